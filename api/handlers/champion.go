package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wrstats/api/dto"
	"wrstats/api/filters"
)

type ChampionService interface {
	GetChampions(ctx context.Context, lang string) ([]dto.Champion, error)
}

// Query parameters of the champion catalog.
type ChampionQueryParams struct {
	Lang string `form:"lang" binding:"omitempty,max=16"`
}

type ChampionHandler struct {
	championService ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService ChampionService
}

func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		championService: deps.ChampionService,
	}
}

// GetChampions returns the catalog localized on the requested language.
func (h *ChampionHandler) GetChampions(c *gin.Context) {
	var qp ChampionQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondBindingError(c, err)
		return
	}

	lang := strings.TrimSpace(qp.Lang)
	if lang == "" {
		lang = filters.DefaultLang
	}

	result, err := h.championService.GetChampions(c.Request.Context(), lang)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
