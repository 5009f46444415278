package drink

import (
	"context"
	"encoding/json"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes drink menu queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List() ([]*models.DrinkShort, error)
	ListDetail() ([]*models.DrinkLong, error)
	Create(*CreateRequest) (*models.DrinkLong, error)
	Update(uint, *CreateRequest) (*models.DrinkLong, error)
	Delete(uint) error
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a drink Service bound to the request context.
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

func (s *service) all() (models.Drinks, error) {
	drinks := make(models.Drinks, 0)
	q := s.connection().WithContext(s.ctx)
	return drinks, q.Order("id").Find(&drinks).Error
}

func (s *service) List() ([]*models.DrinkShort, error) {
	drinks, err := s.all()
	if err != nil {
		return nil, err
	}

	shorts := make([]*models.DrinkShort, len(drinks))
	for i, d := range drinks {
		if shorts[i], err = d.Short(); err != nil {
			return nil, err
		}
	}

	return shorts, nil
}

func (s *service) ListDetail() ([]*models.DrinkLong, error) {
	drinks, err := s.all()
	if err != nil {
		return nil, err
	}

	longs := make([]*models.DrinkLong, len(drinks))
	for i, d := range drinks {
		if longs[i], err = d.Long(); err != nil {
			return nil, err
		}
	}

	return longs, nil
}

// CreateRequest carries a drink title and its structured recipe.
// Updates replace both fields rather than merging.
type CreateRequest struct {
	Title  string              `json:"title" validate:"required"`
	Recipe []models.RecipePart `json:"recipe" validate:"required,min=1,dive"`
}

func (r *CreateRequest) recipe() ([]byte, error) {
	return json.Marshal(r.Recipe)
}

func (s *service) Create(req *CreateRequest) (*models.DrinkLong, error) {
	recipe, err := req.recipe()
	if err != nil {
		return nil, err
	}

	drink := &models.Drink{Title: req.Title, Recipe: recipe}
	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(drink).Error
	})
	if err != nil {
		return nil, err
	}

	return drink.Long()
}

func (s *service) Update(id uint, req *CreateRequest) (*models.DrinkLong, error) {
	recipe, err := req.recipe()
	if err != nil {
		return nil, err
	}

	var drink models.Drink
	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&drink, id).Error; err != nil {
			return err
		}

		drink.Title = req.Title
		drink.Recipe = recipe

		return tx.Save(&drink).Error
	})
	if err != nil {
		return nil, err
	}

	return drink.Long()
}

func (s *service) Delete(id uint) error {
	return s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var drink models.Drink
		if err := tx.First(&drink, id).Error; err != nil {
			return err
		}
		return tx.Delete(&drink).Error
	})
}
