package dto

// A single row of the stats history, as returned to the clients.
type StatsItem struct {
	Date          string   `json:"date"`
	Slug          string   `json:"slug"`
	CnHeroId      string   `json:"cnHeroId"`
	Rank          string   `json:"rank"`
	Lane          string   `json:"lane"`
	Position      *int     `json:"position"`
	WinRate       *float64 `json:"winRate"`
	PickRate      *float64 `json:"pickRate"`
	BanRate       *float64 `json:"banRate"`
	StrengthLevel *int     `json:"strengthLevel"`
}

type HistoryResponse struct {
	Filters FiltersEcho `json:"filters"`
	Count   int         `json:"count"`
	Items   []StatsItem `json:"items"`
}

type UpdatedAtResponse struct {
	UpdatedAt *string `json:"updatedAt"`
}
