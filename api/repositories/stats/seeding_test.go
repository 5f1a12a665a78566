package statsrepository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wrstats/pkg/database/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// Two days of data, king/top is only refreshed on the first day.
func seedTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Exec("TRUNCATE TABLE champion_stats_history").Error)

	rows := []*models.ChampionStats{
		{Date: mustDate(t, "2025-01-01"), Slug: "ahri", CnHeroId: "1", Rank: "diamondPlus", Lane: "mid", WinRate: floatPtr(51), StrengthLevel: intPtr(1)},
		{Date: mustDate(t, "2025-01-01"), Slug: "garen", CnHeroId: "2", Rank: "diamondPlus", Lane: "top", WinRate: floatPtr(50), StrengthLevel: intPtr(2)},
		{Date: mustDate(t, "2025-01-01"), Slug: "garen", CnHeroId: "2", Rank: "king", Lane: "top", WinRate: floatPtr(49), StrengthLevel: intPtr(3)},
		{Date: mustDate(t, "2025-01-02"), Slug: "ahri", CnHeroId: "1", Rank: "diamondPlus", Lane: "mid", WinRate: floatPtr(52), StrengthLevel: intPtr(0)},
		{Date: mustDate(t, "2025-01-02"), Slug: "garen", CnHeroId: "2", Rank: "diamondPlus", Lane: "top", WinRate: floatPtr(48), StrengthLevel: nil},
	}

	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}
