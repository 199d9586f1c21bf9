package controllers

import (
	"errors"
	"strconv"
	"time"

	"dashboard/backend/analytics"
	"dashboard/backend/config"
	"dashboard/backend/models"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SessionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSessionController(db *gorm.DB, cfg *config.Config) *SessionController {
	return &SessionController{DB: db, Cfg: cfg}
}

// GetSessionHistory godoc
// @Summary Get filtered session history
// @Description Returns a student's session history for a named period with the aggregate over that period
// @Tags sessions
// @Accept json
// @Produce json
// @Param studentID path string true "Public student ID"
// @Param period query string false "Period name (default all-time)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID}/sessions [get]
func (sc *SessionController) GetSessionHistory(c *fiber.Ctx) error {
	student, err := findStudent(sc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	period := analytics.Period(c.Query("period", string(analytics.PeriodAllTime)))

	var sessions []models.SessionLog
	if err := sc.DB.Where("student_id = ?", student.ID).Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch session log")
	}

	filtered, err := analytics.FilterSessions(toRecords(sessions), period, time.Now())
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownPeriod) {
			return utils.BadRequest(c, "Unknown period: "+string(period))
		}
		return utils.InternalServerError(c, "Failed to filter sessions")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"period":   string(period),
		"summary":  analytics.Aggregate(filtered),
		"sessions": sessionRows(filtered),
	})
}

// GetCalendar godoc
// @Summary Get calendar heat-map for a month
// @Description Returns calendar cells of the requested month, colored by the day's average listen rate
// @Tags sessions
// @Accept json
// @Produce json
// @Param studentID path string true "Public student ID"
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Param period query string false "Period the history view is filtered by (default all-time)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID}/calendar [get]
func (sc *SessionController) GetCalendar(c *fiber.Ctx) error {
	student, err := findStudent(sc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := c.Query("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			return utils.BadRequest(c, "Invalid year")
		}
	}
	if v := c.Query("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil || month < 1 || month > 12 {
			return utils.BadRequest(c, "Invalid month")
		}
	}

	// Календарь красится по тому же отфильтрованному набору,
	// что и таблица истории.
	period := analytics.Period(c.Query("period", string(analytics.PeriodAllTime)))

	var sessions []models.SessionLog
	if err := sc.DB.Where("student_id = ?", student.ID).Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch session log")
	}

	filtered, err := analytics.FilterSessions(toRecords(sessions), period, now)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownPeriod) {
			return utils.BadRequest(c, "Unknown period: "+string(period))
		}
		return utils.InternalServerError(c, "Failed to filter sessions")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"year":  year,
		"month": month,
		"cells": analytics.BuildMonth(filtered, year, time.Month(month)),
	})
}

// GetUpcomingClasses godoc
// @Summary Get upcoming classes
// @Description Returns a student's scheduled classes, newest first
// @Tags sessions
// @Accept json
// @Produce json
// @Param studentID path string true "Public student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{studentID}/upcoming [get]
func (sc *SessionController) GetUpcomingClasses(c *fiber.Ctx) error {
	student, err := findStudent(sc.DB, c.Params("studentID"))
	if err != nil {
		return utils.NotFound(c, "Student not found")
	}

	var upcoming []models.UpcomingClass
	if err := sc.DB.Where("student_id = ?", student.ID).Find(&upcoming).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch upcoming classes")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"upcoming_classes": upcomingRows(upcoming),
	})
}
