package controllers

import (
	"strconv"
	"time"

	"residencia/backend/config"
	"residencia/backend/models"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnswersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnswersController(db *gorm.DB, cfg *config.Config) *AnswersController {
	return &AnswersController{DB: db, Cfg: cfg}
}

// SaveAnswer records one attempt. Correctness is derived server-side from
// the question, never trusted from the client.
func (ac *AnswersController) SaveAnswer(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type AnswerInput struct {
		QuestionID     uint   `json:"question_id"`
		SelectedAnswer string `json:"selected_answer"`
		TimeSpent      int    `json:"time_spent"`
	}

	var input AnswerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var question models.Question
	if err := ac.DB.First(&question, input.QuestionID).Error; err != nil {
		return utils.NotFound(c, "Question not found")
	}

	answer := models.UserAnswer{
		UserID:          userID,
		QuestionID:      question.ID,
		SelectedAnswer:  input.SelectedAnswer,
		IsCorrect:       input.SelectedAnswer == question.CorrectAnswer,
		TimeSpent:       input.TimeSpent,
		AnsweredAt:      time.Now(),
		MarkedForReview: false,
	}
	if err := ac.DB.Create(&answer).Error; err != nil {
		return utils.InternalServerError(c, "Could not save answer")
	}

	return utils.Created(c, answer)
}

func (ac *AnswersController) GetAnswers(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var answers []models.UserAnswer
	if err := ac.DB.Where("user_id = ?", userID).
		Order("answered_at DESC").
		Find(&answers).Error; err != nil {
		return utils.InternalServerError(c, "Could not query answers")
	}

	return utils.Success(c, fiber.StatusOK, answers)
}

// ToggleReview flips the marked-for-review flag, the only mutable field of
// an answer record.
func (ac *AnswersController) ToggleReview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	answerID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid answer ID")
	}

	var answer models.UserAnswer
	if err := ac.DB.Where("id = ? AND user_id = ?", answerID, userID).
		First(&answer).Error; err != nil {
		return utils.NotFound(c, "Answer not found")
	}

	answer.MarkedForReview = !answer.MarkedForReview
	if err := ac.DB.Save(&answer).Error; err != nil {
		return utils.InternalServerError(c, "Could not update answer")
	}

	return utils.Success(c, fiber.StatusOK, answer)
}
