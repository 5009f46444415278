package models

import "gorm.io/datatypes"

// Venue hosts shows.
type Venue struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"not null"`
	City               string         `json:"city" gorm:"not null"`
	State              string         `json:"state" gorm:"not null"`
	Address            string         `json:"address"`
	Phone              string         `json:"phone"`
	Genres             datatypes.JSON `json:"genres"`
	ImageLink          string         `json:"image_link"`
	FacebookLink       string         `json:"facebook_link"`
	WebsiteLink        string         `json:"website_link"`
	SeekingTalent      bool           `json:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description"`
	Shows              Shows          `json:"-" gorm:"foreignKey:VenueID"`
}

type Venues []*Venue
