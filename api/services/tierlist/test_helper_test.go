package tierlistservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wrstats/api/filters"
	servicetestutil "wrstats/api/services/testutil"
	"wrstats/pkg/database/models"
)

type testMocks struct {
	stats     *servicetestutil.MockStatsRepository
	champions *servicetestutil.MockChampionRepository
	cache     *servicetestutil.MockTierlistCache
}

// setupTestService creates the service with mocked repositories.
// The cache is only wired when withCache is set.
func setupTestService(withCache bool) (*TierlistService, *testMocks) {
	mocks := &testMocks{
		stats:     new(servicetestutil.MockStatsRepository),
		champions: new(servicetestutil.MockChampionRepository),
		cache:     new(servicetestutil.MockTierlistCache),
	}

	service := &TierlistService{
		StatsRepository:    mocks.stats,
		ChampionRepository: mocks.champions,
	}
	if withCache {
		service.cache = mocks.cache
	}

	return service, mocks
}

func (m *testMocks) verify(t *testing.T) {
	t.Helper()
	servicetestutil.VerifyAllMocks(t, m.stats, m.champions, m.cache)
}

func parseDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return day
}

// onDay matches a filter collapsed to the given day.
func onDay(day time.Time) any {
	return mock.MatchedBy(func(f *filters.StatsFilter) bool {
		return f.From != nil && f.To != nil && f.From.Equal(day) && f.To.Equal(day)
	})
}

func tierlistFilter(t *testing.T, qp filters.StatsQueryParams) *filters.TierlistFilter {
	t.Helper()
	filter, err := filters.NewTierlistFilter(&qp)
	require.NoError(t, err)
	return filter
}

func statsFilter(t *testing.T, qp filters.StatsQueryParams) *filters.StatsFilter {
	t.Helper()
	filter, err := filters.NewStatsFilter(&qp)
	require.NoError(t, err)
	return filter
}

func seededRows(day time.Time) []*models.ChampionStats {
	return []*models.ChampionStats{
		{Date: day, Slug: "a", CnHeroId: "1", Rank: "diamondPlus", Lane: "top", StrengthLevel: intPtr(0), WinRate: floatPtr(55), PickRate: floatPtr(10)},
		{Date: day, Slug: "b", CnHeroId: "2", Rank: "diamondPlus", Lane: "top", StrengthLevel: intPtr(0), WinRate: floatPtr(60), PickRate: floatPtr(5)},
		{Date: day, Slug: "c", CnHeroId: "3", Rank: "king", Lane: "mid", StrengthLevel: intPtr(4)},
	}
}
