package quizservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"wrstats/api/dto"
	quizrepo "wrstats/api/repositories/quiz"
	"wrstats/pkg/database/models"
	"wrstats/pkg/messages"
)

// Reasons for a refused reward.
const (
	ReasonAttemptsLimit = "ATTEMPTS_LIMIT"
	ReasonNot100Percent = "NOT_100_PERCENT"
)

const winningPercent = 100

var ErrRewardNotConfigured = errors.New(messages.RewardNotConfigured)

// QuizService tracks the attempts of each user and gates the reward link.
type QuizService struct {
	quizKey        string
	maxAttempts    int
	rewardURL      string
	QuizRepository quizrepo.QuizRepository
}

// QuizServiceDeps is the dependency list for the quiz service.
type QuizServiceDeps struct {
	DB          *gorm.DB
	QuizKey     string
	MaxAttempts int
	RewardURL   string
}

// NewQuizService creates a quiz service.
func NewQuizService(deps *QuizServiceDeps) *QuizService {
	return &QuizService{
		quizKey:        deps.QuizKey,
		maxAttempts:    deps.MaxAttempts,
		rewardURL:      deps.RewardURL,
		QuizRepository: quizrepo.NewQuizRepository(deps.DB),
	}
}

// Status returns the progress of the user.
func (qs *QuizService) Status(ctx context.Context, telegramUserId int64) (*dto.QuizStatus, error) {
	progress, err := qs.QuizRepository.GetProgress(ctx, telegramUserId, qs.quizKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get the quiz progress: %w", err)
	}

	attempts, last := 0, dto.QuizResult{}
	if progress != nil {
		attempts = progress.Attempts
		last = lastResult(progress)
	}

	return &dto.QuizStatus{
		TelegramUserId: telegramUserId,
		QuizKey:        qs.quizKey,
		Attempts:       attempts,
		MaxAttempts:    qs.maxAttempts,
		Blocked:        attempts >= qs.maxAttempts,
		Last:           last,
	}, nil
}

// Attempt records a finished attempt.
// A blocked user is left untouched and gets the stored state back.
func (qs *QuizService) Attempt(ctx context.Context, telegramUserId int64, result dto.QuizResult) (*dto.QuizAttemptResult, error) {
	progress, recorded, err := qs.QuizRepository.RecordAttempt(ctx, &quizrepo.AttemptResult{
		TelegramUserId: telegramUserId,
		QuizKey:        qs.quizKey,
		Percent:        result.Percent,
		Correct:        result.Correct,
		Total:          result.Total,
	}, qs.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to record the quiz attempt: %w", err)
	}

	if !recorded {
		zerolog.Ctx(ctx).Info().
			Int64("telegram_user_id", telegramUserId).
			Int("attempts", progress.Attempts).
			Msg("Attempt ignored, user is blocked")
	}

	return &dto.QuizAttemptResult{
		TelegramUserId: telegramUserId,
		QuizKey:        qs.quizKey,
		Attempts:       progress.Attempts,
		MaxAttempts:    qs.maxAttempts,
		Blocked:        progress.Attempts >= qs.maxAttempts,
		Saved:          lastResult(progress),
	}, nil
}

// Reward returns the reward link when the user is eligible.
func (qs *QuizService) Reward(ctx context.Context, telegramUserId int64) (*dto.QuizReward, error) {
	if qs.rewardURL == "" {
		return nil, ErrRewardNotConfigured
	}

	progress, err := qs.QuizRepository.GetProgress(ctx, telegramUserId, qs.quizKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get the quiz progress: %w", err)
	}

	attempts := 0
	var lastPercent *int
	if progress != nil {
		attempts = progress.Attempts
		lastPercent = progress.LastPercent
	}

	allowed, reason := Eligibility(attempts, lastPercent, qs.maxAttempts)
	if !allowed {
		return &dto.QuizReward{Allowed: false, Reason: &reason}, nil
	}

	url := qs.rewardURL
	return &dto.QuizReward{Allowed: true, URL: &url}, nil
}

// Eligibility decides the reward.
// The limit-th attempt still qualifies, only attempts above the limit are refused.
func Eligibility(attempts int, lastPercent *int, limit int) (bool, string) {
	if attempts > limit {
		return false, ReasonAttemptsLimit
	}
	if lastPercent == nil || *lastPercent != winningPercent {
		return false, ReasonNot100Percent
	}
	return true, ""
}

func lastResult(progress *models.QuizAttempt) dto.QuizResult {
	return dto.QuizResult{
		Percent: progress.LastPercent,
		Correct: progress.LastCorrect,
		Total:   progress.LastTotal,
	}
}
