package dto

// LeaderboardEntry is a champion placed on a tier.
// Name is the localized display name.
type LeaderboardEntry struct {
	Slug          string   `json:"slug"`
	CnHeroId      string   `json:"cnHeroId"`
	Name          string   `json:"name"`
	Icon          *string  `json:"icon"`
	Rank          string   `json:"rank"`
	Lane          string   `json:"lane"`
	Date          string   `json:"date"`
	Position      *int     `json:"position"`
	WinRate       *float64 `json:"winRate"`
	PickRate      *float64 `json:"pickRate"`
	BanRate       *float64 `json:"banRate"`
	StrengthLevel *int     `json:"strengthLevel"`
}

// TierBuckets maps each tier letter to its ordered entries.
// Every tier is always present.
type TierBuckets map[string][]LeaderboardEntry

type RankLaneTiers struct {
	Rank  string      `json:"rank"`
	Lane  string      `json:"lane"`
	Tiers TierBuckets `json:"tiers"`
}

type TierlistResponse struct {
	Filters    TierlistFiltersEcho `json:"filters"`
	TiersOrder []string            `json:"tiersOrder"`
	Tiers      TierBuckets         `json:"tiers"`
}

type BulkTierlistResponse struct {
	Filters         BulkFiltersEcho           `json:"filters"`
	TiersOrder      []string                  `json:"tiersOrder"`
	TiersByRankLane map[string]*RankLaneTiers `json:"tiersByRankLane"`
}
