package championrepository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"wrstats/api/repositories/testutil"
	"wrstats/pkg/database/models"
)

func strPtr(s string) *string { return &s }

func TestNewChampionRepository(t *testing.T) {
	repository := NewChampionRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestChampionRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewChampionRepository(db)
	ctx := context.Background()

	champions := []*models.Champion{
		{
			Slug:              "garen",
			CnHeroId:          strPtr("10002"),
			Name:              strPtr("Garen"),
			NameLocalizations: datatypes.NewJSONType(map[string]string{"en_us": "Garen", "ru_ru": "Гарен"}),
			Roles:             datatypes.NewJSONType([]string{"fighter"}),
		},
		{
			Slug:              "ahri",
			NameLocalizations: datatypes.NewJSONType(map[string]string{"en_us": "Ahri"}),
			Roles:             datatypes.NewJSONType([]string{"mage", "assassin"}),
		},
	}

	affected, err := repository.UpsertChampions(ctx, champions)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	// Update the icon of an existing champion.
	_, err = repository.UpsertChampions(ctx, []*models.Champion{{
		Slug:              "ahri",
		Icon:              strPtr("https://cdn/ahri.png"),
		NameLocalizations: datatypes.NewJSONType(map[string]string{"en_us": "Ahri"}),
	}})
	require.NoError(t, err)

	result, err := repository.GetChampions(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "ahri", result[0].Slug)
	assert.Equal(t, "https://cdn/ahri.png", *result[0].Icon)
	assert.Equal(t, "garen", result[1].Slug)
	assert.Equal(t, "Гарен", result[1].NameLocalizations.Data()["ru_ru"])
	assert.Equal(t, []string{"fighter"}, result[1].Roles.Data())

	testutil.CloseConnection(t, db)
	_, err = repository.GetChampions(ctx)
	assert.Error(t, err)
}
