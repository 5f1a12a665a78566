package models

import "time"

// WebappOpen logs every time the Telegram WebApp is opened.
type WebappOpen struct {
	ID        uint  `gorm:"primaryKey"`
	TgId      int64 `gorm:"not null"`
	Username  *string
	FirstName *string
	LastName  *string
	OpenedAt  time.Time `gorm:"autoCreateTime"`
}
