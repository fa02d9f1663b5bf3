package routes

import (
	"time"

	"residencia/backend/config"
	"residencia/backend/controllers"
	"residencia/backend/filter"
	"residencia/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, engine *filter.Engine) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authController.Me)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Questions routes
	questionsController := controllers.NewQuestionsController(db, cfg, engine)
	app.Get("/api/questions", questionsController.GetQuestions)
	app.Get("/api/questions/:id<int>", questionsController.GetQuestion)
	app.Post("/api/questions/filter", authMiddleware, questionsController.FilterQuestions)
	app.Get("/api/search", questionsController.SearchQuestions)

	// Answers routes
	answersController := controllers.NewAnswersController(db, cfg)
	answers := app.Group("/api/answers", authMiddleware)
	answers.Post("/", answersController.SaveAnswer)
	answers.Get("/", answersController.GetAnswers)
	answers.Put("/:id/review", answersController.ToggleReview)

	// Revisions routes
	revisionsController := controllers.NewRevisionsController(db, cfg)
	revisions := app.Group("/api/revisions", authMiddleware)
	revisions.Get("/", revisionsController.GetRevisions)
	revisions.Post("/complete", revisionsController.CompleteSession)
	revisions.Delete("/", revisionsController.DeleteRevision)

	// Stats routes
	statsController := controllers.NewStatsController(db, cfg)
	app.Get("/api/stats", authMiddleware, statsController.GetStats)

	// Profile routes
	usersController := controllers.NewUsersController(db, cfg)
	app.Put("/api/user/profile", authMiddleware, usersController.UpdateProfile)

	// Admin routes
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/users", usersController.ListUsers)

	app.Post("/api/questions", authMiddleware, adminMiddleware, questionsController.CreateQuestion)
	app.Put("/api/questions/:id<int>", authMiddleware, adminMiddleware, questionsController.UpdateQuestion)
	app.Delete("/api/questions/:id<int>", authMiddleware, adminMiddleware, questionsController.DeleteQuestion)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
