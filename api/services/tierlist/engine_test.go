package tierlistservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"wrstats/api/dto"
	"wrstats/pkg/database/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

var testDay = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

func statsRow(slug string, strength *int, winRate, pickRate *float64) *models.ChampionStats {
	return &models.ChampionStats{
		Date:          testDay,
		Slug:          slug,
		CnHeroId:      "cn-" + slug,
		Rank:          "diamondPlus",
		Lane:          "mid",
		WinRate:       winRate,
		PickRate:      pickRate,
		StrengthLevel: strength,
	}
}

func slugs(entries []dto.LeaderboardEntry) []string {
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Slug)
	}
	return result
}

func TestComputeTiersStrengthMapping(t *testing.T) {
	rows := []*models.ChampionStats{
		statsRow("s0", intPtr(0), nil, nil),
		statsRow("s1", intPtr(1), nil, nil),
		statsRow("s2", intPtr(2), nil, nil),
		statsRow("s3", intPtr(3), nil, nil),
		statsRow("s4", intPtr(4), nil, nil),
		statsRow("s5", intPtr(5), nil, nil),
		statsRow("snil", nil, nil, nil),
		statsRow("s9", intPtr(9), nil, nil),
		statsRow("sneg", intPtr(-1), nil, nil),
	}

	tiers := ComputeTiers(rows, nil, "ru_ru")

	assert.Equal(t, []string{"s0"}, slugs(tiers["S+"]))
	assert.Equal(t, []string{"s1"}, slugs(tiers["S"]))
	assert.Equal(t, []string{"s2"}, slugs(tiers["A"]))
	assert.Equal(t, []string{"s3"}, slugs(tiers["B"]))
	assert.Equal(t, []string{"s4", "snil", "s9", "sneg"}, slugs(tiers["C"]))
	assert.Equal(t, []string{"s5"}, slugs(tiers["D"]))
}

func TestComputeTiersAllSlotsPresent(t *testing.T) {
	tiers := ComputeTiers(nil, nil, "ru_ru")
	require.Len(t, tiers, 6)

	for _, tier := range []string{"S+", "S", "A", "B", "C", "D"} {
		entries, ok := tiers[tier]
		assert.True(t, ok, tier)
		assert.NotNil(t, entries, tier)
		assert.Empty(t, entries, tier)
	}

	body, err := json.Marshal(tiers)
	require.NoError(t, err)
	assert.JSONEq(t, `{"S+":[],"S":[],"A":[],"B":[],"C":[],"D":[]}`, string(body))
}

func TestComputeTiersOrdering(t *testing.T) {
	t.Run("winRateDesc", func(t *testing.T) {
		rows := []*models.ChampionStats{
			statsRow("a", intPtr(0), floatPtr(55), floatPtr(10)),
			statsRow("b", intPtr(0), floatPtr(60), floatPtr(5)),
		}
		tiers := ComputeTiers(rows, nil, "ru_ru")
		assert.Equal(t, []string{"b", "a"}, slugs(tiers["S+"]))
	})

	t.Run("pickRateBreaksTies", func(t *testing.T) {
		rows := []*models.ChampionStats{
			statsRow("a", intPtr(1), floatPtr(50), floatPtr(3)),
			statsRow("b", intPtr(1), floatPtr(50), floatPtr(7)),
		}
		tiers := ComputeTiers(rows, nil, "ru_ru")
		assert.Equal(t, []string{"b", "a"}, slugs(tiers["S"]))
	})

	t.Run("nilCountsAsZero", func(t *testing.T) {
		rows := []*models.ChampionStats{
			statsRow("nil", intPtr(2), nil, nil),
			statsRow("neg", intPtr(2), floatPtr(-1), nil),
			statsRow("pos", intPtr(2), floatPtr(1), nil),
		}
		tiers := ComputeTiers(rows, nil, "ru_ru")
		assert.Equal(t, []string{"pos", "nil", "neg"}, slugs(tiers["A"]))
	})

	t.Run("stableOnFullTies", func(t *testing.T) {
		rows := []*models.ChampionStats{
			statsRow("first", intPtr(3), floatPtr(50), floatPtr(5)),
			statsRow("second", intPtr(3), floatPtr(50), floatPtr(5)),
			statsRow("best", intPtr(3), floatPtr(51), nil),
			statsRow("third", intPtr(3), floatPtr(50), floatPtr(5)),
		}
		tiers := ComputeTiers(rows, nil, "ru_ru")
		assert.Equal(t, []string{"best", "first", "second", "third"}, slugs(tiers["B"]))
	})
}

func TestComputeTiersSkipsMalformedRows(t *testing.T) {
	missingLane := statsRow("nolane", intPtr(0), nil, nil)
	missingLane.Lane = ""
	missingRank := statsRow("norank", intPtr(0), nil, nil)
	missingRank.Rank = ""

	rows := []*models.ChampionStats{
		nil,
		statsRow("", intPtr(0), nil, nil),
		missingLane,
		missingRank,
		statsRow("ok", intPtr(0), nil, nil),
	}

	tiers := ComputeTiers(rows, nil, "ru_ru")
	assert.Equal(t, []string{"ok"}, slugs(tiers["S+"]))
}

func TestComputeTiersLocalization(t *testing.T) {
	catalog := []*models.Champion{
		{
			Slug:              "ahri",
			Name:              strPtr("Ahri"),
			NameLocalizations: datatypes.NewJSONType(map[string]string{"ru_ru": "Ари", "en_us": "Ahri EN"}),
			Icon:              strPtr("https://cdn/ahri.png"),
		},
		{
			Slug:              "garen",
			Name:              strPtr("Garen"),
			NameLocalizations: datatypes.NewJSONType(map[string]string{"en_us": "Garen EN"}),
		},
		{
			Slug:              "lux",
			Name:              strPtr("Lux"),
			NameLocalizations: datatypes.NewJSONType(map[string]string{"ru_ru": ""}),
			Icon:              strPtr(""),
		},
		{Slug: "teemo"},
		nil,
	}

	rows := []*models.ChampionStats{
		statsRow("ahri", intPtr(0), floatPtr(5), nil),
		statsRow("garen", intPtr(0), floatPtr(4), nil),
		statsRow("lux", intPtr(0), floatPtr(3), nil),
		statsRow("teemo", intPtr(0), floatPtr(2), nil),
		statsRow("dangling", intPtr(0), floatPtr(1), nil),
	}

	entries := ComputeTiers(rows, catalog, "ru_ru")["S+"]
	require.Len(t, entries, 5)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Ари", "Garen EN", "Lux", "teemo", "dangling"}, names)

	assert.Equal(t, "https://cdn/ahri.png", *entries[0].Icon)
	assert.Nil(t, entries[1].Icon)
	assert.Nil(t, entries[2].Icon)
	assert.Nil(t, entries[4].Icon)

	assert.Equal(t, "cn-ahri", entries[0].CnHeroId)
	assert.Equal(t, "2025-01-02", entries[0].Date)
	assert.Equal(t, "diamondPlus", entries[0].Rank)
	assert.Equal(t, "mid", entries[0].Lane)
}

func TestComputeTiersIsDeterministic(t *testing.T) {
	rows := []*models.ChampionStats{
		statsRow("a", intPtr(0), floatPtr(50), floatPtr(1)),
		statsRow("b", nil, floatPtr(50), floatPtr(1)),
		statsRow("c", intPtr(5), nil, floatPtr(2)),
	}

	first, err := json.Marshal(ComputeTiers(rows, nil, "en_us"))
	require.NoError(t, err)
	second, err := json.Marshal(ComputeTiers(rows, nil, "en_us"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeBulkTiers(t *testing.T) {
	top := statsRow("garen", intPtr(1), floatPtr(50), nil)
	top.Lane = "top"
	king := statsRow("ahri", intPtr(0), floatPtr(52), nil)
	king.Rank = "king"

	rows := []*models.ChampionStats{
		statsRow("ahri", intPtr(0), floatPtr(51), nil),
		statsRow("lux", intPtr(0), floatPtr(53), nil),
		top,
		king,
		statsRow("", intPtr(0), nil, nil),
	}

	buckets := ComputeBulkTiers(rows, nil, "ru_ru")
	require.Len(t, buckets, 3)

	mid := buckets["diamondPlus|mid"]
	require.NotNil(t, mid)
	assert.Equal(t, "diamondPlus", mid.Rank)
	assert.Equal(t, "mid", mid.Lane)
	assert.Equal(t, []string{"lux", "ahri"}, slugs(mid.Tiers["S+"]))
	assert.Len(t, mid.Tiers, 6)

	assert.Equal(t, []string{"garen"}, slugs(buckets["diamondPlus|top"].Tiers["S"]))
	assert.Empty(t, buckets["diamondPlus|top"].Tiers["S+"])
	assert.Equal(t, []string{"ahri"}, slugs(buckets["king|mid"].Tiers["S+"]))
}

func TestComputeBulkTiersEmpty(t *testing.T) {
	buckets := ComputeBulkTiers(nil, nil, "ru_ru")
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}
