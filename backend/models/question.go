package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Alternative is one option of a multiple-choice question.
type Alternative struct {
	ID     string `json:"id"`
	Letter string `json:"letter"` // A-E
	Text   string `json:"text"`
}

type Question struct {
	gorm.Model
	Specialty     string `gorm:"index"`
	Topic         string
	Subtopic      string
	Board         string // examining institution, join key for region/purpose mappings
	Year          int    `gorm:"index"`
	Statement     string
	Alternatives  []Alternative `gorm:"serializer:json"`
	CorrectAnswer string
	Explanation   string
	Comment       string
	Difficulty    string   `gorm:"index"` // easy, medium, hard
	Tags          []string `gorm:"serializer:json"`
}

var (
	ErrAlternativeCount = errors.New("question must have between 2 and 5 alternatives")
	ErrCorrectAnswer    = errors.New("correct answer must reference an existing alternative")
)

// Validate checks the invariants content workflows must uphold before a
// question is persisted.
func (q *Question) Validate() error {
	if len(q.Alternatives) < 2 || len(q.Alternatives) > 5 {
		return ErrAlternativeCount
	}

	seen := make(map[string]bool, len(q.Alternatives))
	for _, alt := range q.Alternatives {
		if alt.ID == "" {
			return errors.New("alternative is missing an id")
		}
		if seen[alt.ID] {
			return fmt.Errorf("duplicated alternative id %q", alt.ID)
		}
		seen[alt.ID] = true
	}

	if !seen[q.CorrectAnswer] {
		return ErrCorrectAnswer
	}

	return nil
}
