package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"wrstats/api/filters"
	quizrepo "wrstats/api/repositories/quiz"
	"wrstats/pkg/database/models"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetHistory(ctx context.Context, filter *filters.StatsFilter) ([]*models.ChampionStats, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.ChampionStats), args.Error(1)
}

func (m *MockStatsRepository) GetLatestDate(ctx context.Context, filter *filters.StatsFilter) (*time.Time, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockStatsRepository) UpsertStats(ctx context.Context, rows []*models.ChampionStats) (int64, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(int64), args.Error(1)
}

type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) GetChampions(ctx context.Context) ([]*models.Champion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Champion), args.Error(1)
}

func (m *MockChampionRepository) UpsertChampions(ctx context.Context, champions []*models.Champion) (int64, error) {
	args := m.Called(ctx, champions)
	return args.Get(0).(int64), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetProgress(ctx context.Context, telegramUserId int64, quizKey string) (*models.QuizAttempt, error) {
	args := m.Called(ctx, telegramUserId, quizKey)
	return args.Get(0).(*models.QuizAttempt), args.Error(1)
}

func (m *MockQuizRepository) RecordAttempt(ctx context.Context, attempt *quizrepo.AttemptResult, limit int) (*models.QuizAttempt, bool, error) {
	args := m.Called(ctx, attempt, limit)
	return args.Get(0).(*models.QuizAttempt), args.Bool(1), args.Error(2)
}

type MockWebappRepository struct {
	mock.Mock
}

func (m *MockWebappRepository) LogOpen(ctx context.Context, open *models.WebappOpen) error {
	args := m.Called(ctx, open)
	return args.Error(0)
}

// ============================================================================
// Cache mocks.
// ============================================================================

type MockTierlistCache struct {
	mock.Mock
}

// Get copies the JSON of the configured value into dest on a hit.
func (m *MockTierlistCache) Get(ctx context.Context, key string, dest any) bool {
	args := m.Called(ctx, key, dest)
	if !args.Bool(0) {
		return false
	}

	if value := args.Get(1); value != nil {
		j, _ := json.Marshal(value)
		json.Unmarshal(j, dest)
	}
	return true
}

func (m *MockTierlistCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockTierlistCache) Invalidate(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
