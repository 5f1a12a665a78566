package importer

// StatsRecord is a normalized stats row as produced by the scraper.
// Rank and lane may come as names or as the CN numeric codes.
type StatsRecord struct {
	Date          string   `json:"date"`
	Slug          string   `json:"slug"`
	CnHeroId      string   `json:"cnHeroId"`
	Rank          string   `json:"rank"`
	Lane          string   `json:"lane"`
	RankCode      *int     `json:"rankCode"`
	LaneCode      *int     `json:"laneCode"`
	Position      *int     `json:"position"`
	WinRate       *float64 `json:"winRate"`
	PickRate      *float64 `json:"pickRate"`
	BanRate       *float64 `json:"banRate"`
	StrengthLevel *int     `json:"strengthLevel"`
}

// ChampionRecord is a normalized catalog entry.
type ChampionRecord struct {
	Slug                    string              `json:"slug"`
	CnHeroId                *string             `json:"cnHeroId"`
	Name                    *string             `json:"name"`
	NameLocalizations       map[string]string   `json:"nameLocalizations"`
	Roles                   []string            `json:"roles"`
	RolesLocalizations      map[string][]string `json:"rolesLocalizations"`
	Difficulty              *string             `json:"difficulty"`
	DifficultyLocalizations map[string]string   `json:"difficultyLocalizations"`
	Icon                    *string             `json:"icon"`
}
