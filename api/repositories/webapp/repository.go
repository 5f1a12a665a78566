package webapprepository

import (
	"context"

	"gorm.io/gorm"
	"wrstats/pkg/database/models"
)

// WebappRepository logs the WebApp opens.
type WebappRepository interface {
	LogOpen(ctx context.Context, open *models.WebappOpen) error
}

type webappRepository struct {
	db *gorm.DB
}

func NewWebappRepository(db *gorm.DB) WebappRepository {
	return &webappRepository{db: db}
}

func (r *webappRepository) LogOpen(ctx context.Context, open *models.WebappOpen) error {
	return r.db.WithContext(ctx).Create(open).Error
}
