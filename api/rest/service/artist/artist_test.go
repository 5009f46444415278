package artist

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

type ArtistSuite struct {
	suite.Suite
	db  *gorm.DB
	now time.Time
}

func TestArtistSuite(t *testing.T) {
	suite.Run(t, new(ArtistSuite))
}

func (s *ArtistSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(models.All...))
	s.db = db
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ArtistSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func (s *ArtistSuite) service() Service {
	return New(context.Background()).
		WithDatabase(s.db).
		WithClock(clock.At(s.now))
}

func (s *ArtistSuite) createArtist(name string) *models.Artist {
	artist := &models.Artist{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []byte(`["Rock n Roll"]`),
	}
	s.Require().NoError(s.db.Create(artist).Error)
	return artist
}

func (s *ArtistSuite) createVenue(name string) *models.Venue {
	venue := &models.Venue{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []byte(`["Jazz"]`),
	}
	s.Require().NoError(s.db.Create(venue).Error)
	return venue
}

func (s *ArtistSuite) TestList() {
	s.createArtist("Guns N Petals")
	s.createArtist("Matt Quevedo")

	artists, err := s.service().List()
	s.Require().NoError(err)
	s.Require().Len(artists, 2)
	s.Equal("Guns N Petals", artists[0].Name)
}

func (s *ArtistSuite) TestSearchIsCaseInsensitiveSubstring() {
	s.createArtist("Guns N Petals")
	s.createArtist("The Wild Sax Band")

	resp, err := s.service().Search("PETALS")
	s.Require().NoError(err)
	s.Equal(1, resp.Count)
	s.Equal("Guns N Petals", resp.Data[0].Name)

	resp, err = s.service().Search("")
	s.Require().NoError(err)
	s.Equal(2, resp.Count)
}

func (s *ArtistSuite) TestSearchCountsUpcomingShows() {
	artist := s.createArtist("Guns N Petals")
	venue := s.createVenue("The Musical Hop")

	for _, offset := range []time.Duration{-time.Hour, time.Hour, 2 * time.Hour} {
		s.Require().NoError(s.db.Create(&models.Show{
			ArtistID:  artist.ID,
			VenueID:   venue.ID,
			StartTime: s.now.Add(offset),
		}).Error)
	}

	resp, err := s.service().Search("guns")
	s.Require().NoError(err)
	s.Require().Len(resp.Data, 1)
	s.Equal(2, resp.Data[0].NumUpcomingShows)
}

func (s *ArtistSuite) TestGetPartitionsShows() {
	artist := s.createArtist("Guns N Petals")
	venue := s.createVenue("The Musical Hop")

	s.Require().NoError(s.db.Create(&models.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: s.now.Add(-time.Hour),
	}).Error)
	s.Require().NoError(s.db.Create(&models.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: s.now.Add(time.Hour),
	}).Error)

	detail, err := s.service().Get(artist.ID)
	s.Require().NoError(err)
	s.Equal(1, detail.PastShowsCount)
	s.Equal(1, detail.UpcomingShowsCount)
	s.Equal("The Musical Hop", detail.PastShows[0].VenueName)
}

func (s *ArtistSuite) TestUpdateReplacesEveryField() {
	artist := s.createArtist("Guns N Petals")

	updated, err := s.service().Update(artist.ID, &CreateRequest{
		Name:  "Petals",
		City:  "Oakland",
		State: "CA",
	})
	s.Require().NoError(err)
	s.Equal("Petals", updated.Name)

	var persisted models.Artist
	s.Require().NoError(s.db.First(&persisted, artist.ID).Error)
	s.Equal("Oakland", persisted.City)
	s.JSONEq(`[]`, string(persisted.Genres))
}

func (s *ArtistSuite) TestDeleteMissing() {
	s.ErrorIs(s.service().Delete(42), gorm.ErrRecordNotFound)
}
