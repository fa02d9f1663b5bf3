package models

import (
	"time"

	"gorm.io/gorm"
)

// UserAnswer is one attempt at a question. Attempts are never deduplicated:
// answering the same question again creates a new record.
type UserAnswer struct {
	gorm.Model
	UserID          uint `gorm:"index"`
	QuestionID      uint `gorm:"index"`
	SelectedAnswer  string
	IsCorrect       bool
	TimeSpent       int // seconds
	AnsweredAt      time.Time
	MarkedForReview bool // only field mutated after creation
}
