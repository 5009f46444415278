package category

import (
	"context"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes category queries.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List() (models.Categories, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a category Service bound to the request context.
func New(ctx context.Context) Service {
	return &service{ctx: ctx}
}

func (s *service) WithDatabase(conn *gorm.DB) Service {
	if conn == nil {
		return s
	}
	s.db = conn
	return s
}

func (s *service) connection() *gorm.DB {
	if s.db == nil {
		s.db = db.Connection()
	}
	return s.db
}

func (s *service) List() (models.Categories, error) {
	categories := make(models.Categories, 0)

	q := s.connection().WithContext(s.ctx)
	return categories, q.Order("id").Find(&categories).Error
}
