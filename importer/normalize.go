package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"wrstats/pkg/database/models"
	"wrstats/pkg/wrvalues/segment"
	tiervalues "wrstats/pkg/wrvalues/tier"
)

// NormalizeStats turns the scraped records into rows ready for the upsert.
// Records without a date land on day. Later duplicates of a natural key win.
func NormalizeStats(records []StatsRecord, day time.Time, report *Report) []*models.ChampionStats {
	rows := make([]*models.ChampionStats, 0, len(records))
	seen := make(map[string]int, len(records))

	for i := range records {
		row, reason := normalizeStatsRecord(&records[i], day)
		if row == nil {
			report.skip(reason)
			continue
		}

		if row.StrengthLevel != nil && !tiervalues.ValidStrength(*row.StrengthLevel) {
			row.StrengthLevel = nil
			report.ClearedStrength++
		}

		key := row.DateString() + "|" + row.Slug + "|" + segment.Key(row.Rank, row.Lane)
		if idx, ok := seen[key]; ok {
			rows[idx] = row
			report.skip(SkipDuplicate)
			continue
		}

		seen[key] = len(rows)
		rows = append(rows, row)
	}

	return rows
}

func normalizeStatsRecord(record *StatsRecord, day time.Time) (*models.ChampionStats, string) {
	slug := strings.TrimSpace(record.Slug)
	cnHeroId := strings.TrimSpace(record.CnHeroId)
	if slug == "" || cnHeroId == "" {
		return nil, SkipMissingField
	}

	rank, ok := resolveSegment(record.Rank, record.RankCode, segment.RankFromCode)
	if !ok {
		return nil, SkipMissingField
	}
	if !segment.ValidRank(rank) {
		return nil, SkipUnknownRank
	}

	lane, ok := resolveSegment(record.Lane, record.LaneCode, segment.LaneFromCode)
	if !ok {
		return nil, SkipMissingField
	}
	if !segment.ValidLane(lane) {
		return nil, SkipUnknownLane
	}

	if raw := strings.TrimSpace(record.Date); raw != "" {
		parsed, err := time.Parse(models.DateLayout, raw)
		if err != nil || len(raw) != len(models.DateLayout) {
			return nil, SkipBadDate
		}
		day = parsed
	}

	return &models.ChampionStats{
		Date:          day,
		Slug:          slug,
		CnHeroId:      cnHeroId,
		Rank:          rank,
		Lane:          lane,
		Position:      record.Position,
		WinRate:       record.WinRate,
		PickRate:      record.PickRate,
		BanRate:       record.BanRate,
		StrengthLevel: record.StrengthLevel,
	}, ""
}

// The name wins over the code. An unknown code is reported as an unknown name.
func resolveSegment(name string, code *int, fromCode func(int) (string, bool)) (string, bool) {
	if name = strings.TrimSpace(name); name != "" {
		return name, true
	}
	if code == nil {
		return "", false
	}
	if resolved, ok := fromCode(*code); ok {
		return resolved, true
	}
	return strconv.Itoa(*code), true
}

// NormalizeChampions drops the records without a slug and keeps the last record of each slug.
func NormalizeChampions(records []ChampionRecord, report *Report) []*models.Champion {
	champions := make([]*models.Champion, 0, len(records))
	seen := make(map[string]int, len(records))

	for i := range records {
		record := &records[i]

		slug := strings.TrimSpace(record.Slug)
		if slug == "" {
			report.skip(SkipMissingField)
			continue
		}

		champion := &models.Champion{
			Slug:                    slug,
			CnHeroId:                lo.EmptyableToPtr(strings.TrimSpace(lo.FromPtr(record.CnHeroId))),
			Name:                    record.Name,
			NameLocalizations:       datatypes.NewJSONType(record.NameLocalizations),
			Roles:                   datatypes.NewJSONType(record.Roles),
			RolesLocalizations:      datatypes.NewJSONType(record.RolesLocalizations),
			Difficulty:              record.Difficulty,
			DifficultyLocalizations: datatypes.NewJSONType(record.DifficultyLocalizations),
			Icon:                    record.Icon,
		}

		if idx, ok := seen[slug]; ok {
			champions[idx] = champion
			report.skip(SkipDuplicate)
			continue
		}

		seen[slug] = len(champions)
		champions = append(champions, champion)
	}

	return champions
}
