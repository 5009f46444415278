package models

import "time"

// Show books an artist at a venue. Whether a show is upcoming or past
// is always computed against the clock at query time, never stored.
type Show struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	ArtistID  uint      `json:"artist_id" gorm:"not null"`
	VenueID   uint      `json:"venue_id" gorm:"not null"`
}

// Upcoming reports whether the show starts strictly after now.
func (s *Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

type Shows []*Show

// CountUpcoming returns how many shows start strictly after now.
func (s Shows) CountUpcoming(now time.Time) int {
	count := 0
	for _, show := range s {
		if show.Upcoming(now) {
			count++
		}
	}
	return count
}
