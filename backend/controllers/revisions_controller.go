package controllers

import (
	"errors"
	"time"

	"residencia/backend/config"
	"residencia/backend/models"
	"residencia/backend/revision"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RevisionsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRevisionsController(db *gorm.DB, cfg *config.Config) *RevisionsController {
	return &RevisionsController{DB: db, Cfg: cfg}
}

// GetRevisions lists the caller's revisões ordered by due date, scheduled
// entries first.
func (rc *RevisionsController) GetRevisions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var revisions []models.Revision
	if err := rc.DB.Where("user_id = ?", userID).
		Order("proxima_revisao IS NULL, proxima_revisao ASC").
		Find(&revisions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query revisions")
	}

	return utils.Success(c, fiber.StatusOK, revisions)
}

// CompleteSession applies a finished study session for a (tema, microtema)
// pair: the scheduler recomputes the label and next date, and the stored
// entry is replaced.
func (rc *RevisionsController) CompleteSession(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type SessionInput struct {
		Tema       string `json:"tema"`
		Microtema  string `json:"microtema"`
		DataEstudo string `json:"data_estudo"` // YYYY-MM-DD, defaults to today
		Acertos    int    `json:"acertos"`
		Erros      int    `json:"erros"`
	}

	var input SessionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Tema == "" || input.Microtema == "" {
		return utils.BadRequest(c, "Tema and microtema are required")
	}
	if input.Acertos < 0 || input.Erros < 0 || input.Acertos+input.Erros == 0 {
		return utils.BadRequest(c, "Session must have a positive question count")
	}

	studyDate := time.Now().UTC()
	if input.DataEstudo != "" {
		studyDate, err = time.Parse("2006-01-02", input.DataEstudo)
		if err != nil {
			return utils.BadRequest(c, "Invalid data_estudo format. Use YYYY-MM-DD")
		}
	}

	var prev models.Revision
	found := true
	if err := rc.DB.Where("user_id = ? AND tema = ? AND microtema = ?",
		userID, input.Tema, input.Microtema).First(&prev).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query revisions")
		}
		found = false
	}

	next, err := revision.Complete(prev, found, revision.Outcome{
		Tema:      input.Tema,
		Microtema: input.Microtema,
		StudyDate: studyDate,
		Correct:   input.Acertos,
		Incorrect: input.Erros,
	})
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	next.UserID = userID

	if found {
		err = rc.DB.Save(&next).Error
	} else {
		err = rc.DB.Create(&next).Error
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not save revision")
	}

	return utils.Success(c, fiber.StatusOK, next)
}

// DeleteRevision removes the entry for a (tema, microtema) pair.
func (rc *RevisionsController) DeleteRevision(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	tema := c.Query("tema")
	microtema := c.Query("microtema")
	if tema == "" || microtema == "" {
		return utils.BadRequest(c, "Tema and microtema are required")
	}

	result := rc.DB.Where("user_id = ? AND tema = ? AND microtema = ?",
		userID, tema, microtema).Delete(&models.Revision{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete revision")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Revision not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Revision deleted",
	})
}
