package controllers

import (
	"strconv"

	"residencia/backend/config"
	"residencia/backend/filter"
	"residencia/backend/models"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionsController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *filter.Engine
}

func NewQuestionsController(db *gorm.DB, cfg *config.Config, engine *filter.Engine) *QuestionsController {
	return &QuestionsController{DB: db, Cfg: cfg, Engine: engine}
}

// QuestionInput is the admin payload for creating or updating a question.
type QuestionInput struct {
	Specialty     string               `json:"specialty"`
	Topic         string               `json:"topic"`
	Subtopic      string               `json:"subtopic"`
	Board         string               `json:"board"`
	Year          int                  `json:"year"`
	Statement     string               `json:"statement"`
	Alternatives  []models.Alternative `json:"alternatives"`
	CorrectAnswer string               `json:"correct_answer"`
	Explanation   string               `json:"explanation"`
	Comment       string               `json:"comment"`
	Difficulty    string               `json:"difficulty"`
	Tags          []string             `json:"tags"`
}

// GetQuestions returns the catalog, narrowed by the server-side hints
// (specialty, year, difficulty). The richer client criteria run through
// the filter endpoint on top of this subset.
func (qc *QuestionsController) GetQuestions(c *fiber.Ctx) error {
	query := qc.DB.Model(&models.Question{})

	if specialty := c.Query("specialty"); specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return utils.BadRequest(c, "Invalid year")
		}
		query = query.Where("year = ?", year)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []models.Question
	if err := query.Order("created_at DESC").Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query questions")
	}

	return utils.Success(c, fiber.StatusOK, questions)
}

func (qc *QuestionsController) GetQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	var question models.Question
	if err := qc.DB.First(&question, questionID).Error; err != nil {
		return utils.NotFound(c, "Question not found")
	}

	return utils.Success(c, fiber.StatusOK, question)
}

// FilterQuestions runs the caller's criteria against the hinted catalog and
// their own answer log.
func (qc *QuestionsController) FilterQuestions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var criteria filter.Criteria
	if err := c.BodyParser(&criteria); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	query := qc.DB.Model(&models.Question{})
	if criteria.Specialty != nil {
		query = query.Where("specialty = ?", *criteria.Specialty)
	}
	if criteria.Difficulty != nil {
		query = query.Where("difficulty = ?", *criteria.Difficulty)
	}

	var catalog []models.Question
	if err := query.Order("created_at DESC").Find(&catalog).Error; err != nil {
		return utils.InternalServerError(c, "Could not query questions")
	}

	var answers []models.UserAnswer
	if err := qc.DB.Where("user_id = ?", userID).Find(&answers).Error; err != nil {
		return utils.InternalServerError(c, "Could not query answers")
	}

	filtered := qc.Engine.Filter(catalog, criteria, answers)
	return utils.Success(c, fiber.StatusOK, filtered)
}

// SearchQuestions does a free-text search over statement, specialty, topic
// and tags.
func (qc *QuestionsController) SearchQuestions(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return utils.BadRequest(c, "Search term is required")
	}

	pattern := "%" + term + "%"
	var questions []models.Question
	if err := qc.DB.
		Where("statement LIKE ? OR specialty LIKE ? OR topic LIKE ? OR tags LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not search questions")
	}

	return utils.Success(c, fiber.StatusOK, questions)
}

func (qc *QuestionsController) CreateQuestion(c *fiber.Ctx) error {
	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	question := questionFromInput(input)
	fillAlternativeIDs(&question)

	if err := question.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := qc.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not create question")
	}

	return utils.Created(c, question)
}

func (qc *QuestionsController) UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	var question models.Question
	if err := qc.DB.First(&question, questionID).Error; err != nil {
		return utils.NotFound(c, "Question not found")
	}

	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updated := questionFromInput(input)
	updated.ID = question.ID
	updated.CreatedAt = question.CreatedAt
	fillAlternativeIDs(&updated)

	if err := updated.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := qc.DB.Save(&updated).Error; err != nil {
		return utils.InternalServerError(c, "Could not update question")
	}

	return utils.Success(c, fiber.StatusOK, updated)
}

func (qc *QuestionsController) DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	result := qc.DB.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete question")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Question not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Question deleted",
	})
}

func questionFromInput(input QuestionInput) models.Question {
	return models.Question{
		Specialty:     input.Specialty,
		Topic:         input.Topic,
		Subtopic:      input.Subtopic,
		Board:         input.Board,
		Year:          input.Year,
		Statement:     input.Statement,
		Alternatives:  input.Alternatives,
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
		Comment:       input.Comment,
		Difficulty:    input.Difficulty,
		Tags:          input.Tags,
	}
}

// fillAlternativeIDs assigns ids to alternatives the payload left blank.
func fillAlternativeIDs(q *models.Question) {
	for i := range q.Alternatives {
		if q.Alternatives[i].ID == "" {
			q.Alternatives[i].ID = uuid.NewString()
		}
	}
}
