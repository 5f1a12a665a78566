package championservice

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"wrstats/api/dto"
	championrepo "wrstats/api/repositories/champion"
	"wrstats/pkg/database/models"
)

const fallbackLocale = "en_us"

// ChampionService serves the localized champion catalog.
type ChampionService struct {
	ChampionRepository championrepo.ChampionRepository
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	DB *gorm.DB
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	return &ChampionService{
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
	}
}

// GetChampions returns the whole catalog localized on lang.
func (cs *ChampionService) GetChampions(ctx context.Context, lang string) ([]dto.Champion, error) {
	champions, err := cs.ChampionRepository.GetChampions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get the champions: %w", err)
	}

	return lo.FilterMap(champions, func(c *models.Champion, _ int) (dto.Champion, bool) {
		if c == nil {
			return dto.Champion{}, false
		}
		return localizeChampion(c, lang), true
	}), nil
}

func localizeChampion(c *models.Champion, lang string) dto.Champion {
	names := c.NameLocalizations.Data()
	if names == nil {
		names = map[string]string{}
	}

	roles := c.Roles.Data()
	if roles == nil {
		roles = []string{}
	}

	rolesLocalized := c.RolesLocalizations.Data()[lang]
	if len(rolesLocalized) == 0 {
		rolesLocalized = c.RolesLocalizations.Data()[fallbackLocale]
	}
	if rolesLocalized == nil {
		rolesLocalized = []string{}
	}

	difficulties := c.DifficultyLocalizations.Data()

	return dto.Champion{
		Slug:                c.Slug,
		Name:                lo.EmptyableToPtr(lo.CoalesceOrEmpty(names[lang], names[fallbackLocale])),
		NameLocalizations:   names,
		Roles:               roles,
		RolesLocalized:      rolesLocalized,
		Difficulty:          emptyToNil(c.Difficulty),
		DifficultyLocalized: lo.EmptyableToPtr(lo.CoalesceOrEmpty(difficulties[lang], difficulties[fallbackLocale])),
		Icon:                emptyToNil(c.Icon),
		Ids: dto.ChampionIds{
			Slug:     c.Slug,
			CnHeroId: emptyToNil(c.CnHeroId),
		},
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
