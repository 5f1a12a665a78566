package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"wrstats/api/filters"
	"wrstats/api/middleware"
	"wrstats/pkg/messages"
)

// respondError maps the error to its status.
// Validation errors are echoed back, anything else is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	c.Header("Cache-Control", middleware.NoStore)

	var vErr *filters.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   messages.InvalidParameters,
			"field":   vErr.Field,
			"message": vErr.Message,
		})
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("path", c.FullPath()).
		Msg("Request failed")

	c.JSON(http.StatusInternalServerError, gin.H{"error": messages.InternalError})
}

// respondBindingError renders the binding failures field by field.
func respondBindingError(c *gin.Context, err error) {
	c.Header("Cache-Control", middleware.NoStore)

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidParameters, "fields": fields})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidParameters})
}
