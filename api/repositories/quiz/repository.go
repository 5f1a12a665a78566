package quizrepository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wrstats/pkg/database/models"
)

// AttemptResult is the payload of a finished quiz attempt.
type AttemptResult struct {
	TelegramUserId int64
	QuizKey        string
	Percent        *int
	Correct        *int
	Total          *int
}

// QuizRepository is the public interface of the quiz progress store.
type QuizRepository interface {
	GetProgress(ctx context.Context, telegramUserId int64, quizKey string) (*models.QuizAttempt, error)
	RecordAttempt(ctx context.Context, attempt *AttemptResult, limit int) (*models.QuizAttempt, bool, error)
}

type quizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a quiz repository.
func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// The conflict update only runs while below the limit.
// When it doesn't run nothing is returned and the row is left untouched.
const recordAttemptQuery = `
	INSERT INTO quiz_attempts (
		telegram_user_id, quiz_key, attempts, last_percent, last_correct, last_total, created_at, updated_at
	)
	VALUES (?, ?, 1, ?, ?, ?, NOW(), NOW())
	ON CONFLICT (telegram_user_id, quiz_key) DO UPDATE SET
		attempts     = quiz_attempts.attempts + 1,
		last_percent = EXCLUDED.last_percent,
		last_correct = EXCLUDED.last_correct,
		last_total   = EXCLUDED.last_total,
		updated_at   = NOW()
	WHERE quiz_attempts.attempts < ?
	RETURNING *`

// GetProgress returns the progress of the user, nil when never attempted.
func (r *quizRepository) GetProgress(ctx context.Context, telegramUserId int64, quizKey string) (*models.QuizAttempt, error) {
	var progress models.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("telegram_user_id = ? AND quiz_key = ?", telegramUserId, quizKey).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecordAttempt atomically increments the attempts and stores the last result.
// Returns false with the current progress when the user already reached the limit.
func (r *quizRepository) RecordAttempt(ctx context.Context, attempt *AttemptResult, limit int) (*models.QuizAttempt, bool, error) {
	var progress models.QuizAttempt
	result := r.db.WithContext(ctx).
		Raw(recordAttemptQuery,
			attempt.TelegramUserId,
			attempt.QuizKey,
			attempt.Percent,
			attempt.Correct,
			attempt.Total,
			limit,
		).
		Scan(&progress)
	if result.Error != nil {
		return nil, false, result.Error
	}

	if result.RowsAffected > 0 {
		return &progress, true, nil
	}

	// Blocked, the row exists since the conflict branch was taken.
	current, err := r.GetProgress(ctx, attempt.TelegramUserId, attempt.QuizKey)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}
