package artist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/clock"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes artist queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	WithClock(clock.Clock) Service
	List() (models.Artists, error)
	Search(string) (*SearchResponse, error)
	Get(uint) (*Detail, error)
	Create(*CreateRequest) (*models.Artist, error)
	Update(uint, *CreateRequest) (*models.Artist, error)
	Delete(uint) error
}

type service struct {
	ctx context.Context
	db  *gorm.DB
	clk clock.Clock
}

// New creates an artist Service bound to the request context.
func New(ctx context.Context) Service {
	return &service{ctx: ctx, clk: clock.Real{}}
}

func (s *service) WithDatabase(conn *gorm.DB) Service {
	if conn == nil {
		return s
	}
	s.db = conn
	return s
}

func (s *service) WithClock(clk clock.Clock) Service {
	s.clk = clk
	return s
}

func (s *service) connection() *gorm.DB {
	if s.db == nil {
		s.db = db.Connection()
	}
	return s.db
}

func (s *service) nameMatchExpr() string {
	if s.connection().Dialector.Name() == "postgres" {
		return "name ILIKE ?"
	}
	return "name LIKE ?"
}

func (s *service) List() (models.Artists, error) {
	artists := make(models.Artists, 0)

	q := s.connection().WithContext(s.ctx)
	return artists, q.Order("id").Find(&artists).Error
}

// Summary annotates an artist with its upcoming show count.
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResponse lists artists whose name contains the search term.
type SearchResponse struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

func (s *service) Search(term string) (*SearchResponse, error) {
	var artists models.Artists

	q := s.connection().WithContext(s.ctx)
	if err := q.Preload("Shows").
		Where(s.nameMatchExpr(), "%"+term+"%").
		Order("id").
		Find(&artists).Error; err != nil {
		return nil, err
	}

	resp := &SearchResponse{Count: len(artists), Data: []Summary{}}
	now := s.clk.Now()
	for _, artist := range artists {
		resp.Data = append(resp.Data, Summary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: artist.Shows.CountUpcoming(now),
		})
	}

	return resp, nil
}

// ShowEntry describes one show from the artist's perspective.
type ShowEntry struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Detail is the full artist view with its shows partitioned into past
// and upcoming relative to the clock.
type Detail struct {
	*models.Artist
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func (s *service) Get(id uint) (*Detail, error) {
	var artist models.Artist

	q := s.connection().WithContext(s.ctx)
	if err := q.First(&artist, id).Error; err != nil {
		return nil, err
	}

	var entries []ShowEntry
	if err := q.Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", id).
		Order("shows.start_time").
		Scan(&entries).Error; err != nil {
		return nil, err
	}

	detail := &Detail{
		Artist:        &artist,
		PastShows:     []ShowEntry{},
		UpcomingShows: []ShowEntry{},
	}

	now := s.clk.Now()
	for _, entry := range entries {
		if entry.StartTime.After(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		} else {
			detail.PastShows = append(detail.PastShows, entry)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

// CreateRequest carries every mutable artist field. Updates replace
// the full row with these values rather than merging.
type CreateRequest struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

func (r *CreateRequest) genres() ([]byte, error) {
	if r.Genres == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(r.Genres)
}

func (s *service) Create(req *CreateRequest) (*models.Artist, error) {
	genres, err := req.genres()
	if err != nil {
		return nil, err
	}

	artist := &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}

	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	if err != nil {
		return nil, err
	}

	return artist, nil
}

func (s *service) Update(id uint, req *CreateRequest) (*models.Artist, error) {
	genres, err := req.genres()
	if err != nil {
		return nil, err
	}

	var artist models.Artist
	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}

		artist.Name = req.Name
		artist.City = req.City
		artist.State = req.State
		artist.Phone = req.Phone
		artist.Genres = genres
		artist.ImageLink = req.ImageLink
		artist.FacebookLink = req.FacebookLink
		artist.WebsiteLink = req.WebsiteLink
		artist.SeekingVenue = req.SeekingVenue
		artist.SeekingDescription = req.SeekingDescription

		return tx.Save(&artist).Error
	})
	if err != nil {
		return nil, err
	}

	return &artist, nil
}

func (s *service) Delete(id uint) error {
	return s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
}
