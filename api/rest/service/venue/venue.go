package venue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/clock"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes venue queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	WithClock(clock.Clock) Service
	List() ([]Area, error)
	Search(string) (*SearchResponse, error)
	Get(uint) (*Detail, error)
	Create(*CreateRequest) (*models.Venue, error)
	Update(uint, *CreateRequest) (*models.Venue, error)
	Delete(uint) error
}

type service struct {
	ctx context.Context
	db  *gorm.DB
	clk clock.Clock
}

// New creates a venue Service bound to the request context.
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

// nameMatchExpr returns a dialect-aware case-insensitive substring
// match on the name column. SQLite LIKE is already case-insensitive,
// Postgres needs ILIKE.
func (s *service) nameMatchExpr() string {
	if s.connection().Dialector.Name() == "postgres" {
		return "name ILIKE ?"
	}
	return "name LIKE ?"
}

// Area groups the venues of one distinct (city, state) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// Summary annotates a venue with its upcoming show count.
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

func (s *service) List() ([]Area, error) {
	var venues models.Venues

	q := s.connection().WithContext(s.ctx)
	if err := q.Preload("Shows").Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}

	var (
		now   = s.clk.Now()
		areas = []Area{}
		index = map[[2]string]int{}
	)

	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			areas = append(areas, Area{City: venue.City, State: venue.State})
			i = len(areas) - 1
			index[key] = i
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: venue.Shows.CountUpcoming(now),
		})
	}

	return areas, nil
}

// SearchResponse lists venues whose name contains the search term.
type SearchResponse struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

func (s *service) Search(term string) (*SearchResponse, error) {
	var venues models.Venues

	q := s.connection().WithContext(s.ctx)
	if err := q.Preload("Shows").
		Where(s.nameMatchExpr(), "%"+term+"%").
		Order("id").
		Find(&venues).Error; err != nil {
		return nil, err
	}

	resp := &SearchResponse{Count: len(venues), Data: []Summary{}}
	now := s.clk.Now()
	for _, venue := range venues {
		resp.Data = append(resp.Data, Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: venue.Shows.CountUpcoming(now),
		})
	}

	return resp, nil
}

// ShowEntry describes one show from the venue's perspective.
type ShowEntry struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Detail is the full venue view with its shows partitioned into past
// and upcoming relative to the clock.
type Detail struct {
	*models.Venue
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func (s *service) Get(id uint) (*Detail, error) {
	var venue models.Venue

	q := s.connection().WithContext(s.ctx)
	if err := q.First(&venue, id).Error; err != nil {
		return nil, err
	}

	var entries []ShowEntry
	if err := q.Model(&models.Show{}).
		Select("shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", id).
		Order("shows.start_time").
		Scan(&entries).Error; err != nil {
		return nil, err
	}

	detail := &Detail{
		Venue:         &venue,
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

// CreateRequest carries every mutable venue field. Updates replace
// the full row with these values rather than merging.
type CreateRequest struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

func (r *CreateRequest) genres() ([]byte, error) {
	if r.Genres == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(r.Genres)
}

func (s *service) Create(req *CreateRequest) (*models.Venue, error) {
	genres, err := req.genres()
	if err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}

	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
	if err != nil {
		return nil, err
	}

	return venue, nil
}

func (s *service) Update(id uint, req *CreateRequest) (*models.Venue, error) {
	genres, err := req.genres()
	if err != nil {
		return nil, err
	}

	var venue models.Venue
	err = s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}

		venue.Name = req.Name
		venue.City = req.City
		venue.State = req.State
		venue.Address = req.Address
		venue.Phone = req.Phone
		venue.Genres = genres
		venue.ImageLink = req.ImageLink
		venue.FacebookLink = req.FacebookLink
		venue.WebsiteLink = req.WebsiteLink
		venue.SeekingTalent = req.SeekingTalent
		venue.SeekingDescription = req.SeekingDescription

		return tx.Save(&venue).Error
	})
	if err != nil {
		return nil, err
	}

	return &venue, nil
}

func (s *service) Delete(id uint) error {
	return s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
}
