package quiz

import (
	"context"
	"math/rand"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// AllCategories is the category sentinel matching the whole bank.
const AllCategories uint = 0

// Service picks the next quiz question.
type Service interface {
	WithDatabase(*gorm.DB) Service
	Next(*NextRequest) (*models.Question, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a quiz Service bound to the request context.
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

// NextRequest filters candidates by category and excludes questions
// already presented in this quiz round.
type NextRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

// QuizCategory identifies the category filter; AllCategories matches
// every question.
type QuizCategory struct {
	ID uint `json:"id"`
}

// Next draws one unseen question uniformly at random. The draw happens
// over the set difference of candidates and previously seen questions,
// so exhaustion is exact: a nil question means every candidate has
// been presented. An empty candidate list is a not-found condition.
func (s *service) Next(req *NextRequest) (*models.Question, error) {
	questions := make(models.Questions, 0)

	q := s.connection().WithContext(s.ctx)
	if req.QuizCategory.ID != AllCategories {
		q = q.Where("category_id = ?", req.QuizCategory.ID)
	}
	if err := q.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	seen := make(map[uint]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		seen[id] = struct{}{}
	}

	unseen := make(models.Questions, 0, len(questions))
	for _, question := range questions {
		if _, ok := seen[question.ID]; !ok {
			unseen = append(unseen, question)
		}
	}

	if len(unseen) == 0 {
		return nil, nil
	}

	return unseen[rand.Intn(len(unseen))], nil
}
