package question

import (
	"context"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"github.com/stagehand-cloud/stagehand/pkg/pagination"
	"gorm.io/gorm"
)

// Service exposes question-bank queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List(page int) (*ListResponse, error)
	Search(term string) (*SearchResponse, error)
	Create(req *CreateRequest, page int) (*CreateResponse, error)
	Delete(id uint) (*DeleteResponse, error)
	ByCategory(categoryID uint) (*CategoryQuestionsResponse, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a question Service bound to the request context.
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

func (s *service) questionMatchExpr() string {
	if s.connection().Dialector.Name() == "postgres" {
		return "question ILIKE ?"
	}
	return "question LIKE ?"
}

func (s *service) all() (models.Questions, error) {
	questions := make(models.Questions, 0)
	q := s.connection().WithContext(s.ctx)
	return questions, q.Order("id").Find(&questions).Error
}

func (s *service) categories() (models.Categories, error) {
	categories := make(models.Categories, 0)
	q := s.connection().WithContext(s.ctx)
	return categories, q.Order("id").Find(&categories).Error
}

// ListResponse is one page of the ordered question bank. An empty
// page is a not-found condition for the caller.
type ListResponse struct {
	Questions       models.Questions `json:"questions"`
	TotalQuestions  int              `json:"total_questions"`
	Categories      map[uint]string  `json:"categories"`
	CurrentCategory interface{}      `json:"current_category"`
}

func (s *service) List(page int) (*ListResponse, error) {
	questions, err := s.all()
	if err != nil {
		return nil, err
	}

	categories, err := s.categories()
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Questions:      pagination.Page(questions, page),
		TotalQuestions: len(questions),
		Categories:     categories.Types(),
	}, nil
}

// SearchResponse lists questions whose text contains the search term.
// The total counts the whole bank, not the matches.
type SearchResponse struct {
	Questions       models.Questions `json:"questions"`
	TotalQuestions  int64            `json:"total_questions"`
	CurrentCategory interface{}      `json:"current_category"`
}

func (s *service) Search(term string) (*SearchResponse, error) {
	questions := make(models.Questions, 0)

	q := s.connection().WithContext(s.ctx)
	if err := q.Where(s.questionMatchExpr(), "%"+term+"%").
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := q.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, err
	}

	return &SearchResponse{Questions: questions, TotalQuestions: total}, nil
}

// CreateRequest carries a new question.
type CreateRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   uint   `json:"category" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"gte=1,lte=5"`
}

// CreateResponse echoes the created id alongside the requested page
// of the refreshed bank.
type CreateResponse struct {
	Created        uint             `json:"created"`
	Questions      models.Questions `json:"questions"`
	TotalQuestions int              `json:"total_questions"`
}

func (s *service) Create(req *CreateRequest, page int) (*CreateResponse, error) {
	question := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: req.Difficulty,
	}

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, req.Category).Error; err != nil {
			return err
		}
		return tx.Create(question).Error
	})
	if err != nil {
		return nil, err
	}

	questions, err := s.all()
	if err != nil {
		return nil, err
	}

	return &CreateResponse{
		Created:        question.ID,
		Questions:      pagination.Page(questions, page),
		TotalQuestions: len(questions),
	}, nil
}

// DeleteResponse echoes the deleted id alongside the refreshed bank.
type DeleteResponse struct {
	Deleted        uint             `json:"deleted"`
	Questions      models.Questions `json:"questions"`
	TotalQuestions int              `json:"total_questions"`
}

func (s *service) Delete(id uint) (*DeleteResponse, error) {
	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, id).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return nil, err
	}

	questions, err := s.all()
	if err != nil {
		return nil, err
	}

	return &DeleteResponse{
		Deleted:        id,
		Questions:      questions,
		TotalQuestions: len(questions),
	}, nil
}

// CategoryQuestionsResponse lists every question of one category.
type CategoryQuestionsResponse struct {
	Questions       models.Questions `json:"questions"`
	TotalQuestions  int              `json:"total_questions"`
	CurrentCategory string           `json:"current_category"`
}

func (s *service) ByCategory(categoryID uint) (*CategoryQuestionsResponse, error) {
	q := s.connection().WithContext(s.ctx)

	var category models.Category
	if err := q.First(&category, categoryID).Error; err != nil {
		return nil, err
	}

	questions := make(models.Questions, 0)
	if err := q.Where("category_id = ?", categoryID).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &CategoryQuestionsResponse{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}
