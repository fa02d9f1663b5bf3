package controllers

import (
	"residencia/backend/config"
	"residencia/backend/models"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UsersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUsersController(db *gorm.DB, cfg *config.Config) *UsersController {
	return &UsersController{DB: db, Cfg: cfg}
}

// ListUsers returns every registered user for the admin panel.
func (uc *UsersController) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Could not query users")
	}

	result := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		result = append(result, fiber.Map{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"subscription": user.Subscription,
			"created_at":   user.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// UpdateProfile lets a user change their own name and weekly study time.
func (uc *UsersController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type ProfileInput struct {
		Name      string `json:"name"`
		StudyTime int    `json:"study_time"`
	}

	var input ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.StudyTime > 0 {
		user.StudyTime = input.StudyTime
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"study_time": user.StudyTime,
	})
}
