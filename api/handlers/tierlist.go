package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"wrstats/api/dto"
	"wrstats/api/filters"
)

type TierlistService interface {
	GetTierlist(ctx context.Context, filter *filters.TierlistFilter) (*dto.TierlistResponse, error)
	GetBulkTierlist(ctx context.Context, filter *filters.StatsFilter) (*dto.BulkTierlistResponse, error)
}

// Tier list handler.
type TierlistHandler struct {
	tierlistService TierlistService
}

type TierlistHandlerDependencies struct {
	TierlistService TierlistService
}

// Create a new instance of the tierlist handler.
func NewTierlistHandler(deps *TierlistHandlerDependencies) *TierlistHandler {
	return &TierlistHandler{
		tierlistService: deps.TierlistService,
	}
}

// GetTierlist handles the tierlist of a single rank and lane.
func (h *TierlistHandler) GetTierlist(c *gin.Context) {
	var qp filters.StatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, err := filters.NewTierlistFilter(&qp)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.tierlistService.GetTierlist(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBulkTierlist handles the tierlist of every rank and lane.
func (h *TierlistHandler) GetBulkTierlist(c *gin.Context) {
	var qp filters.StatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, err := filters.NewStatsFilter(&qp)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.tierlistService.GetBulkTierlist(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
