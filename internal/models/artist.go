package models

import "gorm.io/datatypes"

// Artist performs at shows.
type Artist struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"not null"`
	City               string         `json:"city" gorm:"not null"`
	State              string         `json:"state" gorm:"not null"`
	Phone              string         `json:"phone"`
	Genres             datatypes.JSON `json:"genres"`
	ImageLink          string         `json:"image_link"`
	FacebookLink       string         `json:"facebook_link"`
	WebsiteLink        string         `json:"website_link"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	Shows              Shows          `json:"-" gorm:"foreignKey:ArtistID"`
}

type Artists []*Artist
