package controllers

import (
	"residencia/backend/config"
	"residencia/backend/models"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStatsController(db *gorm.DB, cfg *config.Config) *StatsController {
	return &StatsController{DB: db, Cfg: cfg}
}

// GetStats returns the caller's answer totals and accuracy, optionally
// narrowed to one specialty.
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	specialty := c.Query("specialty")
	baseQuery := func() *gorm.DB {
		query := sc.DB.Model(&models.UserAnswer{}).Where("user_answers.user_id = ?", userID)
		if specialty != "" {
			query = query.
				Joins("JOIN questions ON questions.id = user_answers.question_id").
				Where("questions.specialty = ?", specialty)
		}
		return query
	}

	var total int64
	if err := baseQuery().Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Could not query answers")
	}

	var correct int64
	if err := baseQuery().Where("user_answers.is_correct = ?", true).Count(&correct).Error; err != nil {
		return utils.InternalServerError(c, "Could not query answers")
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total_questions": total,
		"correct_answers": correct,
		"accuracy":        accuracy,
	})
}
