package models

import "time"

// QuizAttempt holds the progress of a user on a quiz.
// One row per (telegram user, quiz key).
type QuizAttempt struct {
	ID             uint   `gorm:"primaryKey"`
	TelegramUserId int64  `gorm:"not null;uniqueIndex:idx_quiz_user_key,priority:1"`
	QuizKey        string `gorm:"type:varchar(64);not null;default:lol_quiz;uniqueIndex:idx_quiz_user_key,priority:2"`
	Attempts       int    `gorm:"not null;default:0"`
	LastPercent    *int
	LastCorrect    *int
	LastTotal      *int
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
