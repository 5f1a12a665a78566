package dto

// Echo of the history filters.
type FiltersEcho struct {
	Slug   *string  `json:"slug"`
	Rank   []string `json:"rank"`
	Lane   []string `json:"lane"`
	From   *string  `json:"from"`
	To     *string  `json:"to"`
	Latest bool     `json:"latest"`
}

// Echo of the scoped tierlist filters.
type TierlistFiltersEcho struct {
	Rank string  `json:"rank"`
	Lane string  `json:"lane"`
	Date *string `json:"date"`
	Lang string  `json:"lang"`
	Slug *string `json:"slug,omitempty"`
}

// Echo of the bulk tierlist filters.
type BulkFiltersEcho struct {
	Date *string  `json:"date"`
	Lang string   `json:"lang"`
	Rank []string `json:"rank,omitempty"`
	Lane []string `json:"lane,omitempty"`
	Slug *string  `json:"slug,omitempty"`
}
