package statsrepository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wrstats/api/filters"
	"wrstats/api/repositories/testutil"
	"wrstats/pkg/database/models"
)

func TestNewStatsRepository(t *testing.T) {
	repository := NewStatsRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func newFilter(t *testing.T, qp filters.StatsQueryParams) *filters.StatsFilter {
	t.Helper()
	filter, err := filters.NewStatsFilter(&qp)
	require.NoError(t, err)
	return filter
}

func TestStatsRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewStatsRepository(db)
	seedTestData(t, db)
	ctx := context.Background()

	t.Run("historyOrdered", func(t *testing.T) {
		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{}))
		require.NoError(t, err)
		require.Len(t, rows, 5)

		keys := make([]string, 0, len(rows))
		for _, row := range rows {
			keys = append(keys, row.DateString()+"/"+row.Slug+"/"+row.Rank)
		}
		assert.Equal(t, []string{
			"2025-01-01/ahri/diamondPlus",
			"2025-01-01/garen/diamondPlus",
			"2025-01-01/garen/king",
			"2025-01-02/ahri/diamondPlus",
			"2025-01-02/garen/diamondPlus",
		}, keys)
	})

	t.Run("historyFiltered", func(t *testing.T) {
		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{Slug: "garen", From: "2025-01-02"}))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2025-01-02", rows[0].DateString())
		assert.Nil(t, rows[0].StrengthLevel)
	})

	t.Run("historyEmpty", func(t *testing.T) {
		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{Slug: "teemo"}))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("latestGlobal", func(t *testing.T) {
		latest, err := repository.GetLatestDate(ctx, newFilter(t, filters.StatsQueryParams{}))
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "2025-01-02", latest.Format(models.DateLayout))
	})

	t.Run("latestPerSlice", func(t *testing.T) {
		latest, err := repository.GetLatestDate(ctx, newFilter(t, filters.StatsQueryParams{Rank: "king"}))
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "2025-01-01", latest.Format(models.DateLayout))

		// The resolved day always has rows for the slice.
		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{Rank: "king"}).OnDay(*latest))
		require.NoError(t, err)
		assert.NotEmpty(t, rows)
	})

	t.Run("latestBounded", func(t *testing.T) {
		latest, err := repository.GetLatestDate(ctx, newFilter(t, filters.StatsQueryParams{To: "2025-01-01"}))
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "2025-01-01", latest.Format(models.DateLayout))
	})

	t.Run("latestEmpty", func(t *testing.T) {
		latest, err := repository.GetLatestDate(ctx, newFilter(t, filters.StatsQueryParams{Lane: "jungle"}))
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("upsertReplaces", func(t *testing.T) {
		affected, err := repository.UpsertStats(ctx, []*models.ChampionStats{
			{Date: mustDate(t, "2025-01-02"), Slug: "ahri", CnHeroId: "1", Rank: "diamondPlus", Lane: "mid", WinRate: floatPtr(60), StrengthLevel: intPtr(5)},
			{Date: mustDate(t, "2025-01-03"), Slug: "ahri", CnHeroId: "1", Rank: "diamondPlus", Lane: "mid", WinRate: floatPtr(55)},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{Slug: "ahri", Date: "2025-01-02"}))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 60.0, *rows[0].WinRate)
		assert.Equal(t, 5, *rows[0].StrengthLevel)

		var count int64
		require.NoError(t, db.Model(&models.ChampionStats{}).Count(&count).Error)
		assert.Equal(t, int64(6), count)
	})

	t.Run("upsertEmpty", func(t *testing.T) {
		affected, err := repository.UpsertStats(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("nilFilter", func(t *testing.T) {
		_, err := repository.GetHistory(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("dbconnectionerr", func(t *testing.T) {
		testutil.CloseConnection(t, db)

		rows, err := repository.GetHistory(ctx, newFilter(t, filters.StatsQueryParams{}))
		assert.Error(t, err)
		assert.Nil(t, rows)

		latest, err := repository.GetLatestDate(ctx, newFilter(t, filters.StatsQueryParams{}))
		assert.Error(t, err)
		assert.Nil(t, latest)
	})
}
