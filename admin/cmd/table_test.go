package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wrstats/api/dto"
	"wrstats/importer"
)

func TestPrintTierlist(t *testing.T) {
	date := "2025-03-10"
	winRate := 52.5
	strength := 0

	result := &dto.TierlistResponse{
		Filters:    dto.TierlistFiltersEcho{Rank: "king", Lane: "mid", Date: &date, Lang: "en_us"},
		TiersOrder: []string{"S+", "S", "A", "B", "C", "D"},
		Tiers: dto.TierBuckets{
			"S+": {{Slug: "ahri", Name: "Ahri", WinRate: &winRate, StrengthLevel: &strength}},
			"S":  {},
			"A":  {},
			"B":  {},
			"C":  {{Slug: "garen", Name: "Garen"}},
			"D":  {},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printTierlist(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "Rank: king  |  Lane: mid  |  Date: 2025-03-10")
	assert.Contains(t, out, "Ahri")
	assert.Contains(t, out, "52.50")
	assert.Contains(t, out, "Garen")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Ahri")), bytes.Index(buf.Bytes(), []byte("Garen")))
}

func TestPrintTierlistWithoutData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTierlist(&buf, &dto.TierlistResponse{
		Filters: dto.TierlistFiltersEcho{Rank: "king", Lane: "mid", Lang: "ru_ru"},
	}))

	assert.Contains(t, buf.String(), "Date: no data")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, &importer.Report{
		Kind:     "stats",
		Read:     5,
		Imported: 3,
		Skipped:  map[string]int{importer.SkipUnknownLane: 1, importer.SkipMissingField: 1},
	}))

	out := buf.String()
	assert.Contains(t, out, "Import: stats  |  Read: 5  |  Imported: 3  |  Skipped: 2")
	assert.Contains(t, out, "skipped unknown_lane")
	assert.Contains(t, out, "skipped missing_field")
}

func TestParseDay(t *testing.T) {
	day, err := parseDay("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", day.Format("2006-01-02"))

	_, err = parseDay("2025-3-10")
	assert.Error(t, err)

	today, err := parseDay("")
	require.NoError(t, err)
	assert.Zero(t, today.Hour())
}
