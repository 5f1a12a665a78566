package models

import "gorm.io/datatypes"

// Champion is the catalog entry, localized per locale key (ru_ru, en_us, zh_cn).
type Champion struct {
	Slug                    string                                `gorm:"primaryKey"`
	CnHeroId                *string                               `gorm:"column:cn_hero_id"`
	NameLocalizations       datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	Name                    *string
	Roles                   datatypes.JSONType[[]string]            `gorm:"type:jsonb"`
	RolesLocalizations      datatypes.JSONType[map[string][]string] `gorm:"type:jsonb"`
	Difficulty              *string
	DifficultyLocalizations datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	Icon                    *string
}
