package revision

import (
	"errors"
	"time"

	"residencia/backend/models"
)

// Performance labels shown in the revisões list.
const (
	Ruim  = "Ruim"
	Bom   = "Bom"
	Otimo = "Ótimo"
)

// ErrNegativeReviewCount is returned when a caller hands the scheduler a
// review count below zero, which no valid workflow produces.
var ErrNegativeReviewCount = errors.New("review count must be non-negative")

// intervalDays maps the number of completed reviews to the days until the
// next one. Past the table the entry is archived.
var intervalDays = []int{1, 3, 7, 15, 30}

// ClassifyPerformance maps an accuracy ratio to a performance label.
// Boundaries belong to the higher band: 0.50 is Bom, 0.70 is Ótimo.
func ClassifyPerformance(accuracy float64) string {
	if accuracy < 0.5 {
		return Ruim
	}
	if accuracy < 0.7 {
		return Bom
	}
	return Otimo
}

// NextReviewDate computes the next scheduled review as a UTC civil date.
// The second return is false when the entry has exhausted the interval
// table and should be archived.
func NextReviewDate(studyDate time.Time, reviewCount int) (time.Time, bool, error) {
	if reviewCount < 0 {
		return time.Time{}, false, ErrNegativeReviewCount
	}
	if reviewCount >= len(intervalDays) {
		return time.Time{}, false, nil
	}
	return civilDate(studyDate).AddDate(0, 0, intervalDays[reviewCount]), true, nil
}

// Outcome is the result of one completed study session for a
// (tema, microtema) pair.
type Outcome struct {
	Tema      string
	Microtema string
	StudyDate time.Time
	Correct   int
	Incorrect int
}

// Complete applies a finished study session and returns the replacement
// entry for the pair. prev is the stored entry and found says whether one
// existed: a new pair starts at review count zero, a repeated session
// advances the count by one. Once the interval table is exhausted
// ProximaRevisao stays nil and the entry is archived for good.
func Complete(prev models.Revision, found bool, out Outcome) (models.Revision, error) {
	count := 0
	if found {
		if prev.ProximaRevisao == nil {
			// Arquivada: estado terminal, a contagem não volta.
			count = prev.NRevisoes
		} else {
			count = prev.NRevisoes + 1
		}
	}

	total := out.Correct + out.Incorrect
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(out.Correct) / float64(total)
	}

	next := prev
	next.Tema = out.Tema
	next.Microtema = out.Microtema
	next.DataEstudo = civilDate(out.StudyDate)
	next.NQuestoes = total
	next.Acertos = out.Correct
	next.Erros = out.Incorrect
	next.Percentual = accuracy
	next.Desempenho = ClassifyPerformance(accuracy)
	next.NRevisoes = count

	date, scheduled, err := NextReviewDate(out.StudyDate, count)
	if err != nil {
		return models.Revision{}, err
	}
	if scheduled {
		next.ProximaRevisao = &date
	} else {
		next.ProximaRevisao = nil
	}

	return next, nil
}

// civilDate truncates to a calendar day in UTC. All scheduling arithmetic
// runs on these values so day boundaries do not depend on the server zone.
func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
