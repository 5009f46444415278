package models

// Question is a single trivia entry. The category key is serialized
// as "category" to match the API payloads.
type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	CategoryID uint   `json:"category" gorm:"column:category_id;not null"`
	Difficulty int    `json:"difficulty"`
}

type Questions []*Question

// IDs returns the question identifiers in order.
func (q Questions) IDs() []uint {
	ids := make([]uint, len(q))
	for i, question := range q {
		ids[i] = question.ID
	}
	return ids
}
