package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"wrstats/api/dto"
)

type WebappService interface {
	LogOpen(ctx context.Context, open dto.WebappOpen) error
}

// Body sent by the WebApp when it's opened.
type WebappOpenBody struct {
	TgId      int64   `json:"tgId" binding:"required,gt=0"`
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type WebappHandler struct {
	webappService WebappService
}

type WebappHandlerDependencies struct {
	WebappService WebappService
}

func NewWebappHandler(deps *WebappHandlerDependencies) *WebappHandler {
	return &WebappHandler{
		webappService: deps.WebappService,
	}
}

// PostOpen logs a WebApp open.
func (h *WebappHandler) PostOpen(c *gin.Context) {
	var body WebappOpenBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tgId"})
		return
	}

	err := h.webappService.LogOpen(c.Request.Context(), dto.WebappOpen{
		TgId:      body.TgId,
		Username:  body.Username,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
