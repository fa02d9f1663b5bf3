package filter

import (
	"residencia/backend/models"
)

// Engine evaluates filter criteria against an in-memory question catalog.
// It holds only the static board mappings and is safe for concurrent use.
type Engine struct {
	mappings Mappings
}

func NewEngine(m Mappings) *Engine {
	return &Engine{mappings: m}
}

// Filter returns the questions matching every active criterion, preserving
// catalog order. Empty criteria yield an empty result: an unfiltered catalog
// is never surfaced, the user has to narrow scope first.
func (e *Engine) Filter(catalog []models.Question, c Criteria, answers []models.UserAnswer) []models.Question {
	if c.IsEmpty() {
		return []models.Question{}
	}

	result := make([]models.Question, 0, len(catalog))
	for _, q := range catalog {
		if e.matches(q, c, answers) {
			result = append(result, q)
		}
	}
	return result
}

func (e *Engine) matches(q models.Question, c Criteria, answers []models.UserAnswer) bool {
	if c.Specialty != nil && q.Specialty != *c.Specialty {
		return false
	}
	if c.Topic != nil && q.Topic != *c.Topic {
		return false
	}
	if c.Subtopic != nil && q.Subtopic != *c.Subtopic {
		return false
	}
	if c.Board != nil && q.Board != *c.Board {
		return false
	}
	if c.Difficulty != nil && q.Difficulty != *c.Difficulty {
		return false
	}

	// A non-empty Years list overrides the single Year field.
	if len(c.Years) > 0 {
		if !containsInt(c.Years, q.Year) {
			return false
		}
	} else if c.Year != nil && q.Year != *c.Year {
		return false
	}

	if len(c.Specialties) > 0 && !containsString(c.Specialties, q.Specialty) {
		return false
	}
	if len(c.Subtopics) > 0 && !containsString(c.Subtopics, q.Subtopic) {
		return false
	}
	if len(c.Institutions) > 0 && !containsString(c.Institutions, q.Board) {
		return false
	}

	if c.Answered != nil {
		answered := false
		for _, a := range answers {
			if a.QuestionID == q.ID {
				answered = true
				break
			}
		}
		if *c.Answered != answered {
			return false
		}
	}

	if c.MarkedForReview != nil {
		latest, ok := latestAnswer(answers, q.ID)
		if !ok || latest.MarkedForReview != *c.MarkedForReview {
			return false
		}
	}

	if len(c.Regions) > 0 && !intersects(e.mappings.RegionsFor(q.Board), c.Regions) {
		return false
	}
	if len(c.Purposes) > 0 && !intersects(e.mappings.PurposesFor(q.Board), c.Purposes) {
		return false
	}

	return true
}

// latestAnswer picks the most recent attempt for a question by AnsweredAt.
func latestAnswer(answers []models.UserAnswer, questionID uint) (models.UserAnswer, bool) {
	var latest models.UserAnswer
	found := false
	for _, a := range answers {
		if a.QuestionID != questionID {
			continue
		}
		if !found || a.AnsweredAt.After(latest.AnsweredAt) {
			latest = a
			found = true
		}
	}
	return latest, found
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
