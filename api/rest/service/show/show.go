package show

import (
	"context"
	"time"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes show queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List() ([]Entry, error)
	Create(*CreateRequest) (*models.Show, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a show Service bound to the request context.
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

// Entry is a show joined with its venue and artist names.
type Entry struct {
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func (s *service) List() ([]Entry, error) {
	entries := []Entry{}

	q := s.connection().WithContext(s.ctx)
	err := q.Model(&models.Show{}).
		Select(`shows.venue_id, venues.name AS venue_name,
			shows.artist_id, artists.name AS artist_name,
			artists.image_link AS artist_image_link, shows.start_time`).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.id").
		Scan(&entries).Error

	return entries, err
}

// CreateRequest books an artist at a venue. Both sides must already
// exist.
type CreateRequest struct {
	ArtistID  uint      `json:"artist_id" validate:"required"`
	VenueID   uint      `json:"venue_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

func (s *service) Create(req *CreateRequest) (*models.Show, error) {
	show := &models.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
	}

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Artist{}, req.ArtistID).Error; err != nil {
			return err
		}
		if err := tx.First(&models.Venue{}, req.VenueID).Error; err != nil {
			return err
		}
		return tx.Create(show).Error
	})
	if err != nil {
		return nil, err
	}

	return show, nil
}
