package dto

type ChampionIds struct {
	Slug     string  `json:"slug"`
	CnHeroId *string `json:"cnHeroId"`
}

// Champion localized on the requested language.
type Champion struct {
	Slug                string            `json:"slug"`
	Name                *string           `json:"name"`
	NameLocalizations   map[string]string `json:"nameLocalizations"`
	Roles               []string          `json:"roles"`
	RolesLocalized      []string          `json:"rolesLocalized"`
	Difficulty          *string           `json:"difficulty"`
	DifficultyLocalized *string           `json:"difficultyLocalized"`
	Icon                *string           `json:"icon"`
	Ids                 ChampionIds       `json:"ids"`
}
