package controllers

import (
	"time"

	"dashboard/backend/analytics"
	"dashboard/backend/config"
	"dashboard/backend/models"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudentController(db *gorm.DB, cfg *config.Config) *StudentController {
	return &StudentController{DB: db, Cfg: cfg}
}

// GetStudents godoc
// @Summary List students
// @Description Returns the roster with quick per-student stats
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /students [get]
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := sc.DB.Order("name").Find(&students).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch students")
	}

	now := time.Now()
	var result []fiber.Map
	for _, student := range students {
		var sessions []models.SessionLog
		sc.DB.Where("student_id = ?", student.ID).Find(&sessions)

		var curve []models.ForgettingCurveEntry
		sc.DB.Where("student_id = ?", student.ID).Find(&curve)

		summary := analytics.Aggregate(toRecords(sessions))
		buckets := analytics.Classify(toEntries(curve), now)

		result = append(result, fiber.Map{
			"student_id":          student.PublicID,
			"student_name":        student.Name,
			"total_sessions":      summary.Count,
			"average_listen_rate": summary.AverageListenRate,
			"pending_reps":        len(buckets.Pending),
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetStudent godoc
// @Summary Get student header data
// @Description Returns the name and counters shown in the dashboard header
// @Tags students
// @Produce json
// @Param studentID path string true "Public student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID} [get]
func (sc *StudentController) GetStudent(c *fiber.Ctx) error {
	student, err := findStudent(sc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	var sessionCount int64
	sc.DB.Model(&models.SessionLog{}).Where("student_id = ?", student.ID).Count(&sessionCount)

	var upcomingCount int64
	sc.DB.Model(&models.UpcomingClass{}).Where("student_id = ?", student.ID).Count(&upcomingCount)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"student_id":       student.PublicID,
		"student_name":     student.Name,
		"total_sessions":   sessionCount,
		"upcoming_classes": upcomingCount,
	})
}
