package tierlistservice

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"wrstats/api/dto"
	"wrstats/pkg/database/models"
	"wrstats/pkg/wrvalues/segment"
	tiervalues "wrstats/pkg/wrvalues/tier"
)

// Locale used when the requested one has no name.
const FallbackLocale = "en_us"

// ComputeTiers buckets the rows of a single rank and lane.
// Rows without slug, rank or lane are skipped.
func ComputeTiers(rows []*models.ChampionStats, catalog []*models.Champion, locale string) dto.TierBuckets {
	champions := indexCatalog(catalog)
	tiers := newTierBuckets()

	for _, row := range rows {
		if !usableRow(row) {
			continue
		}
		addEntry(tiers, row, champions, locale)
	}

	sortTiers(tiers)
	return tiers
}

// ComputeBulkTiers buckets the rows of every rank and lane, keyed by "rank|lane".
func ComputeBulkTiers(rows []*models.ChampionStats, catalog []*models.Champion, locale string) map[string]*dto.RankLaneTiers {
	champions := indexCatalog(catalog)
	buckets := make(map[string]*dto.RankLaneTiers)

	for _, row := range rows {
		if !usableRow(row) {
			continue
		}

		key := segment.Key(row.Rank, row.Lane)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &dto.RankLaneTiers{
				Rank:  row.Rank,
				Lane:  row.Lane,
				Tiers: newTierBuckets(),
			}
			buckets[key] = bucket
		}

		addEntry(bucket.Tiers, row, champions, locale)
	}

	for _, bucket := range buckets {
		sortTiers(bucket.Tiers)
	}

	return buckets
}

// DisplayName resolves the champion name for the locale.
// Falls back to the english name, the raw name and finally the slug.
func DisplayName(champion *models.Champion, slug, locale string) string {
	if champion == nil {
		return slug
	}

	localized := champion.NameLocalizations.Data()
	return lo.CoalesceOrEmpty(
		localized[locale],
		localized[FallbackLocale],
		lo.FromPtr(champion.Name),
		slug,
	)
}

func indexCatalog(catalog []*models.Champion) map[string]*models.Champion {
	valid := lo.Filter(catalog, func(c *models.Champion, _ int) bool {
		return c != nil && c.Slug != ""
	})
	return lo.KeyBy(valid, func(c *models.Champion) string {
		return c.Slug
	})
}

func usableRow(row *models.ChampionStats) bool {
	return row != nil && row.Slug != "" && row.Rank != "" && row.Lane != ""
}

// All six slots are present, even when empty.
func newTierBuckets() dto.TierBuckets {
	tiers := make(dto.TierBuckets, len(tiervalues.Order))
	for _, tier := range tiervalues.Order {
		tiers[tier] = []dto.LeaderboardEntry{}
	}
	return tiers
}

func addEntry(tiers dto.TierBuckets, row *models.ChampionStats, champions map[string]*models.Champion, locale string) {
	champion := champions[row.Slug]

	var icon *string
	if champion != nil && champion.Icon != nil && *champion.Icon != "" {
		icon = champion.Icon
	}

	tier := tiervalues.FromStrength(row.StrengthLevel)
	tiers[tier] = append(tiers[tier], dto.LeaderboardEntry{
		Slug:          row.Slug,
		CnHeroId:      row.CnHeroId,
		Name:          DisplayName(champion, row.Slug, locale),
		Icon:          icon,
		Rank:          row.Rank,
		Lane:          row.Lane,
		Date:          row.DateString(),
		Position:      row.Position,
		WinRate:       row.WinRate,
		PickRate:      row.PickRate,
		BanRate:       row.BanRate,
		StrengthLevel: row.StrengthLevel,
	})
}

// Win rate desc, then pick rate desc. Missing rates count as zero.
// Stable so full ties keep the input order.
func sortTiers(tiers dto.TierBuckets) {
	for _, entries := range tiers {
		slices.SortStableFunc(entries, func(a, b dto.LeaderboardEntry) int {
			if c := cmp.Compare(lo.FromPtr(b.WinRate), lo.FromPtr(a.WinRate)); c != 0 {
				return c
			}
			return cmp.Compare(lo.FromPtr(b.PickRate), lo.FromPtr(a.PickRate))
		})
	}
}
