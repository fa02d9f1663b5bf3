package models

import (
	"time"

	"gorm.io/gorm"
)

// Revision is one spaced-repetition entry for a (tema, microtema) pair.
// A new study session for the same pair replaces the row instead of
// appending; ProximaRevisao nil means the entry is archived.
type Revision struct {
	gorm.Model
	UserID         uint   `gorm:"index;uniqueIndex:idx_revision_key"`
	Tema           string `gorm:"uniqueIndex:idx_revision_key"`
	Microtema      string `gorm:"uniqueIndex:idx_revision_key"`
	DataEstudo     time.Time
	NQuestoes      int
	Acertos        int
	Erros          int
	Percentual     float64 // 0.0 - 1.0
	Desempenho     string  // Ruim, Bom, Ótimo
	NRevisoes      int
	ProximaRevisao *time.Time
}
