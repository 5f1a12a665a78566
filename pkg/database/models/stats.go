package models

import "time"

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// ChampionStats is a single day of statistics of a champion on a given rank and lane.
// (date, slug, rank, lane) is the natural key and the upsert target.
type ChampionStats struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_stats_natural_key,priority:1" json:"date"`
	Slug          string    `gorm:"not null;uniqueIndex:idx_stats_natural_key,priority:2" json:"slug"`
	CnHeroId      string    `gorm:"column:cn_hero_id;not null" json:"cnHeroId"`
	Rank          string    `gorm:"not null;uniqueIndex:idx_stats_natural_key,priority:3" json:"rank"`
	Lane          string    `gorm:"not null;uniqueIndex:idx_stats_natural_key,priority:4" json:"lane"`
	Position      *int      `json:"position"`
	WinRate       *float64  `json:"winRate"`
	PickRate      *float64  `json:"pickRate"`
	BanRate       *float64  `json:"banRate"`
	StrengthLevel *int      `json:"strengthLevel"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
}

func (ChampionStats) TableName() string {
	return "champion_stats_history"
}

// DateString formats the row date.
func (cs *ChampionStats) DateString() string {
	return cs.Date.Format(DateLayout)
}
