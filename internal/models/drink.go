package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Drink is a café menu entry. The recipe is stored serialized and
// exposed in a short (public) and long (privileged) representation.
type Drink struct {
	ID     uint           `json:"id" gorm:"primaryKey"`
	Title  string         `json:"title" gorm:"unique;not null"`
	Recipe datatypes.JSON `json:"recipe"`
}

type Drinks []*Drink

// RecipePart is one ingredient of a drink recipe.
type RecipePart struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Parts int    `json:"parts"`
}

// ShortRecipePart omits the ingredient name.
type ShortRecipePart struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkLong is the full drink representation.
type DrinkLong struct {
	ID     uint         `json:"id"`
	Title  string       `json:"title"`
	Recipe []RecipePart `json:"recipe"`
}

// DrinkShort is the public drink representation.
type DrinkShort struct {
	ID     uint              `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortRecipePart `json:"recipe"`
}

// Long decodes the stored recipe into the full representation.
func (d *Drink) Long() (*DrinkLong, error) {
	parts := []RecipePart{}
	if len(d.Recipe) > 0 {
		if err := json.Unmarshal(d.Recipe, &parts); err != nil {
			return nil, err
		}
	}

	return &DrinkLong{ID: d.ID, Title: d.Title, Recipe: parts}, nil
}

// Short decodes the stored recipe into the public representation.
func (d *Drink) Short() (*DrinkShort, error) {
	long, err := d.Long()
	if err != nil {
		return nil, err
	}

	short := &DrinkShort{
		ID:     long.ID,
		Title:  long.Title,
		Recipe: make([]ShortRecipePart, len(long.Recipe)),
	}
	for i, part := range long.Recipe {
		short.Recipe[i] = ShortRecipePart{Color: part.Color, Parts: part.Parts}
	}

	return short, nil
}
