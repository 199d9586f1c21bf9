package routes

import (
	"dashboard/backend/config"
	"dashboard/backend/controllers"
	"dashboard/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Import routes
	importController := controllers.NewImportController(db, cfg)
	app.Post("/api/import", authMiddleware, importController.ImportDataset)
	app.Get("/api/import/batches", authMiddleware, adminMiddleware, importController.GetImportBatches)

	// Student routes; чтение дашборда открыто по публичному ID студента,
	// как у исходной страницы
	studentController := controllers.NewStudentController(db, cfg)
	app.Get("/api/students", authMiddleware, studentController.GetStudents)
	app.Get("/api/students/:studentID", studentController.GetStudent)

	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/api/students/:studentID/dashboard", dashboardController.GetDashboard)

	sessionController := controllers.NewSessionController(db, cfg)
	app.Get("/api/students/:studentID/sessions", sessionController.GetSessionHistory)
	app.Get("/api/students/:studentID/calendar", sessionController.GetCalendar)
	app.Get("/api/students/:studentID/upcoming", sessionController.GetUpcomingClasses)

	// Repetition routes
	repetitionController := controllers.NewRepetitionController(db, cfg)
	app.Get("/api/students/:studentID/repetitions", repetitionController.GetRepetitions)
	app.Post("/api/repetitions/:id/learned", authMiddleware, repetitionController.MarkLearned)
}
