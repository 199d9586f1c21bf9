package controllers

import (
	"strconv"
	"time"

	"dashboard/backend/analytics"
	"dashboard/backend/config"
	"dashboard/backend/models"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RepetitionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRepetitionController(db *gorm.DB, cfg *config.Config) *RepetitionController {
	return &RepetitionController{DB: db, Cfg: cfg}
}

// GetRepetitions godoc
// @Summary Get one repetition bucket
// @Description Returns the rows of a repetition bucket (pending, today or tomorrow) for a student
// @Tags repetitions
// @Accept json
// @Produce json
// @Param studentID path string true "Public student ID"
// @Param bucket query string true "Bucket name: pending, today or tomorrow"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID}/repetitions [get]
func (rc *RepetitionController) GetRepetitions(c *fiber.Ctx) error {
	student, err := findStudent(rc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	var curve []models.ForgettingCurveEntry
	if err := rc.DB.Where("student_id = ?", student.ID).Find(&curve).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch forgetting curve")
	}

	buckets := analytics.Classify(toEntries(curve), time.Now())

	bucket := c.Query("bucket", "pending")
	var rows []analytics.RepetitionEntry
	switch bucket {
	case "pending":
		rows = buckets.Pending
	case "today":
		rows = buckets.DueToday
	case "tomorrow":
		rows = buckets.DueTomorrow
	default:
		return utils.BadRequest(c, "Unknown bucket: "+bucket)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"bucket":      bucket,
		"count":       len(rows),
		"repetitions": repetitionRows(rows),
	})
}

// MarkLearned godoc
// @Summary Mark a repetition as performed
// @Description Sets the completion timestamp on a forgetting-curve entry; buckets are recomputed on the next read
// @Tags repetitions
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /repetitions/{id}/learned [post]
func (rc *RepetitionController) MarkLearned(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid repetition ID")
	}

	var entry models.ForgettingCurveEntry
	if err := rc.DB.First(&entry, id).Error; err != nil {
		return utils.NotFound(c, "Repetition not found")
	}

	if entry.LearnedAt == nil {
		now := time.Now()
		entry.LearnedAt = &now
		if err := rc.DB.Save(&entry).Error; err != nil {
			return utils.InternalServerError(c, "Failed to update repetition")
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         entry.ID,
		"learned_at": entry.LearnedAt,
	})
}
