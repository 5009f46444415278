package venue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/clock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type VenueSuite struct {
	suite.Suite
	db  *gorm.DB
	now time.Time
}

func TestVenueSuite(t *testing.T) {
	suite.Run(t, new(VenueSuite))
}

func (s *VenueSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(models.All...))
	s.db = db
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *VenueSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func (s *VenueSuite) service() Service {
	return New(context.Background()).
		WithDatabase(s.db).
		WithClock(clock.At(s.now))
}

func (s *VenueSuite) createVenue(name, city, state string) *models.Venue {
	venue := &models.Venue{
		Name:   name,
		City:   city,
		State:  state,
		Genres: []byte(`["Jazz"]`),
	}
	s.Require().NoError(s.db.Create(venue).Error)
	return venue
}

func (s *VenueSuite) createArtist(name string) *models.Artist {
	artist := &models.Artist{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []byte(`["Jazz"]`),
	}
	s.Require().NoError(s.db.Create(artist).Error)
	return artist
}

func (s *VenueSuite) createShow(venueID, artistID uint, at time.Time) {
	s.Require().NoError(s.db.Create(&models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: at,
	}).Error)
}

func (s *VenueSuite) TestListGroupsByLocation() {
	hop := s.createVenue("The Musical Hop", "San Francisco", "CA")
	park := s.createVenue("Park Square Live", "San Francisco", "CA")
	duel := s.createVenue("The Dueling Pianos Bar", "New York", "NY")
	artist := s.createArtist("Guns N Petals")

	s.createShow(hop.ID, artist.ID, s.now.Add(24*time.Hour))
	s.createShow(hop.ID, artist.ID, s.now.Add(-24*time.Hour))
	s.createShow(duel.ID, artist.ID, s.now.Add(48*time.Hour))

	areas, err := s.service().List()
	s.Require().NoError(err)
	s.Require().Len(areas, 2)

	s.Equal("San Francisco", areas[0].City)
	s.Equal("CA", areas[0].State)
	s.Require().Len(areas[0].Venues, 2)
	s.Equal(hop.ID, areas[0].Venues[0].ID)
	s.Equal(1, areas[0].Venues[0].NumUpcomingShows)
	s.Equal(park.ID, areas[0].Venues[1].ID)
	s.Equal(0, areas[0].Venues[1].NumUpcomingShows)

	s.Equal("New York", areas[1].City)
	s.Require().Len(areas[1].Venues, 1)
	s.Equal(1, areas[1].Venues[0].NumUpcomingShows)
}

func (s *VenueSuite) TestSearchIsCaseInsensitiveSubstring() {
	s.createVenue("The Musical Hop", "San Francisco", "CA")
	s.createVenue("Park Square Live", "San Francisco", "CA")

	resp, err := s.service().Search("music")
	s.Require().NoError(err)
	s.Equal(1, resp.Count)
	s.Require().Len(resp.Data, 1)
	s.Equal("The Musical Hop", resp.Data[0].Name)
}

func (s *VenueSuite) TestSearchEmptyTermMatchesAll() {
	s.createVenue("The Musical Hop", "San Francisco", "CA")
	s.createVenue("Park Square Live", "San Francisco", "CA")

	resp, err := s.service().Search("")
	s.Require().NoError(err)
	s.Equal(2, resp.Count)
}

func (s *VenueSuite) TestGetPartitionsShows() {
	venue := s.createVenue("The Musical Hop", "San Francisco", "CA")
	artist := s.createArtist("Guns N Petals")

	s.createShow(venue.ID, artist.ID, s.now.Add(-time.Hour))
	s.createShow(venue.ID, artist.ID, s.now.Add(time.Hour))
	s.createShow(venue.ID, artist.ID, s.now.Add(2*time.Hour))

	detail, err := s.service().Get(venue.ID)
	s.Require().NoError(err)
	s.Equal(1, detail.PastShowsCount)
	s.Equal(2, detail.UpcomingShowsCount)
	s.Equal(3, detail.PastShowsCount+detail.UpcomingShowsCount)
	s.Equal("Guns N Petals", detail.UpcomingShows[0].ArtistName)
}

func (s *VenueSuite) TestGetMissing() {
	_, err := s.service().Get(42)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *VenueSuite) TestCreate() {
	venue, err := s.service().Create(&CreateRequest{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Genres:        []string{"Jazz", "Reggae"},
		SeekingTalent: true,
	})
	s.Require().NoError(err)
	s.NotZero(venue.ID)

	var persisted models.Venue
	s.Require().NoError(s.db.First(&persisted, venue.ID).Error)
	s.Equal("The Musical Hop", persisted.Name)
	s.JSONEq(`["Jazz","Reggae"]`, string(persisted.Genres))
	s.True(persisted.SeekingTalent)
}

func (s *VenueSuite) TestUpdateReplacesEveryField() {
	venue := s.createVenue("The Musical Hop", "San Francisco", "CA")

	updated, err := s.service().Update(venue.ID, &CreateRequest{
		Name:  "The Hop",
		City:  "Oakland",
		State: "CA",
	})
	s.Require().NoError(err)
	s.Equal("The Hop", updated.Name)
	s.Equal("Oakland", updated.City)

	var persisted models.Venue
	s.Require().NoError(s.db.First(&persisted, venue.ID).Error)
	s.Equal("The Hop", persisted.Name)
	// full replace, not merge: unset fields come back empty
	s.Empty(persisted.Phone)
	s.JSONEq(`[]`, string(persisted.Genres))
}

func (s *VenueSuite) TestUpdateMissing() {
	_, err := s.service().Update(42, &CreateRequest{Name: "x", City: "y", State: "z"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *VenueSuite) TestDelete() {
	venue := s.createVenue("The Musical Hop", "San Francisco", "CA")
	s.Require().NoError(s.service().Delete(venue.ID))

	var count int64
	s.db.Model(&models.Venue{}).Count(&count)
	s.Zero(count)
}

func (s *VenueSuite) TestDeleteMissing() {
	s.ErrorIs(s.service().Delete(42), gorm.ErrRecordNotFound)
}
