package models

// Category labels trivia questions.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null"`
}

type Categories []*Category

// Types maps category identifiers to their display type.
func (c Categories) Types() map[uint]string {
	types := make(map[uint]string, len(c))
	for _, category := range c {
		types[category.ID] = category.Type
	}
	return types
}
