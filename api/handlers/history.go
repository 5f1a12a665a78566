package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"wrstats/api/dto"
	"wrstats/api/filters"
)

type HistoryService interface {
	GetHistory(ctx context.Context, filter *filters.StatsFilter) (*dto.HistoryResponse, error)
	GetUpdatedAt(ctx context.Context) (*dto.UpdatedAtResponse, error)
}

// HistoryHandler serves the raw stats history.
type HistoryHandler struct {
	historyService HistoryService
}

type HistoryHandlerDependencies struct {
	HistoryService HistoryService
}

func NewHistoryHandler(deps *HistoryHandlerDependencies) *HistoryHandler {
	return &HistoryHandler{
		historyService: deps.HistoryService,
	}
}

// GetHistory handles the champion history requests.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
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

	result, err := h.historyService.GetHistory(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUpdatedAt returns the date of the freshest data.
func (h *HistoryHandler) GetUpdatedAt(c *gin.Context) {
	result, err := h.historyService.GetUpdatedAt(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
