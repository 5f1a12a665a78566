package webappservice

import (
	"context"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"
	"wrstats/api/dto"
	webapprepo "wrstats/api/repositories/webapp"
	"wrstats/pkg/database/models"
)

// Longer names are dropped instead of stored.
const maxNameLength = 64

type WebappService struct {
	WebappRepository webapprepo.WebappRepository
}

type WebappServiceDeps struct {
	DB *gorm.DB
}

func NewWebappService(deps *WebappServiceDeps) *WebappService {
	return &WebappService{
		WebappRepository: webapprepo.NewWebappRepository(deps.DB),
	}
}

// LogOpen stores a WebApp open.
func (ws *WebappService) LogOpen(ctx context.Context, open dto.WebappOpen) error {
	err := ws.WebappRepository.LogOpen(ctx, &models.WebappOpen{
		TgId:      open.TgId,
		Username:  sanitizeName(open.Username),
		FirstName: sanitizeName(open.FirstName),
		LastName:  sanitizeName(open.LastName),
	})
	if err != nil {
		return fmt.Errorf("failed to log the webapp open: %w", err)
	}
	return nil
}

func sanitizeName(name *string) *string {
	if name == nil || utf8.RuneCountInString(*name) > maxNameLength {
		return nil
	}
	return name
}
