package controllers

import (
	"errors"
	"time"

	"dashboard/backend/analytics"
	"dashboard/backend/config"
	"dashboard/backend/models"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Get full dashboard payload
// @Description Returns summary cards, session history for the selected period, upcoming classes and repetition buckets for a student
// @Tags dashboard
// @Accept json
// @Produce json
// @Param studentID path string true "Public student ID"
// @Param period query string false "Period name (default all-time)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID}/dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	student, err := findStudent(dc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	period := analytics.Period(c.Query("period", string(analytics.PeriodAllTime)))
	now := time.Now()

	var sessions []models.SessionLog
	if err := dc.DB.Where("student_id = ?", student.ID).Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch session log")
	}

	filtered, err := analytics.FilterSessions(toRecords(sessions), period, now)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownPeriod) {
			return utils.BadRequest(c, "Unknown period: "+string(period))
		}
		return utils.InternalServerError(c, "Failed to filter sessions")
	}
	summary := analytics.Aggregate(filtered)

	var curve []models.ForgettingCurveEntry
	if err := dc.DB.Where("student_id = ?", student.ID).Find(&curve).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch forgetting curve")
	}
	buckets := analytics.Classify(toEntries(curve), now)

	var upcoming []models.UpcomingClass
	if err := dc.DB.Where("student_id = ?", student.ID).Find(&upcoming).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch upcoming classes")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"student": fiber.Map{
			"student_id":   student.PublicID,
			"student_name": student.Name,
		},
		"period": string(period),
		"summary": models.DashboardSummary{
			TotalSessions:     summary.Count,
			AverageListenRate: summary.AverageListenRate,
			PendingReps:       len(buckets.Pending),
			RepsDueToday:      len(buckets.DueToday),
			RepsDueTomorrow:   len(buckets.DueTomorrow),
		},
		"session_history":  sessionRows(filtered),
		"upcoming_classes": upcomingRows(upcoming),
		"repetitions": fiber.Map{
			"pending":      repetitionRows(buckets.Pending),
			"due_today":    repetitionRows(buckets.DueToday),
			"due_tomorrow": repetitionRows(buckets.DueTomorrow),
		},
	})
}

func findStudent(db *gorm.DB, publicID string) (models.Student, error) {
	var student models.Student
	err := db.Where("public_id = ?", publicID).First(&student).Error
	return student, err
}
