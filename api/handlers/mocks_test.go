package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"wrstats/api/dto"
	"wrstats/api/filters"
)

type mockTierlistService struct {
	mock.Mock
}

func (m *mockTierlistService) GetTierlist(ctx context.Context, filter *filters.TierlistFilter) (*dto.TierlistResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(*dto.TierlistResponse), args.Error(1)
}

func (m *mockTierlistService) GetBulkTierlist(ctx context.Context, filter *filters.StatsFilter) (*dto.BulkTierlistResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(*dto.BulkTierlistResponse), args.Error(1)
}

type mockHistoryService struct {
	mock.Mock
}

func (m *mockHistoryService) GetHistory(ctx context.Context, filter *filters.StatsFilter) (*dto.HistoryResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(*dto.HistoryResponse), args.Error(1)
}

func (m *mockHistoryService) GetUpdatedAt(ctx context.Context) (*dto.UpdatedAtResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(*dto.UpdatedAtResponse), args.Error(1)
}

type mockChampionService struct {
	mock.Mock
}

func (m *mockChampionService) GetChampions(ctx context.Context, lang string) ([]dto.Champion, error) {
	args := m.Called(ctx, lang)
	return args.Get(0).([]dto.Champion), args.Error(1)
}

type mockQuizService struct {
	mock.Mock
}

func (m *mockQuizService) Status(ctx context.Context, telegramUserId int64) (*dto.QuizStatus, error) {
	args := m.Called(ctx, telegramUserId)
	return args.Get(0).(*dto.QuizStatus), args.Error(1)
}

func (m *mockQuizService) Attempt(ctx context.Context, telegramUserId int64, result dto.QuizResult) (*dto.QuizAttemptResult, error) {
	args := m.Called(ctx, telegramUserId, result)
	return args.Get(0).(*dto.QuizAttemptResult), args.Error(1)
}

func (m *mockQuizService) Reward(ctx context.Context, telegramUserId int64) (*dto.QuizReward, error) {
	args := m.Called(ctx, telegramUserId)
	return args.Get(0).(*dto.QuizReward), args.Error(1)
}

type mockWebappService struct {
	mock.Mock
}

func (m *mockWebappService) LogOpen(ctx context.Context, open dto.WebappOpen) error {
	args := m.Called(ctx, open)
	return args.Error(0)
}
