package controllers

import (
	"errors"

	"dashboard/backend/config"
	"dashboard/backend/ingest"
	"dashboard/backend/models"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ImportController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewImportController(db *gorm.DB, cfg *config.Config) *ImportController {
	return &ImportController{DB: db, Cfg: cfg}
}

// ImportDataset godoc
// @Summary Import a student dataset snapshot
// @Description Ingests the raw dataset (session log, upcoming classes, forgetting curve) and replaces the student's previous snapshot. Malformed rows are skipped and reported, they do not fail the import.
// @Tags import
// @Accept json
// @Produce json
// @Param dataset body ingest.RawDataset true "Raw dataset"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /import [post]
func (ic *ImportController) ImportDataset(c *fiber.Ctx) error {
	var raw ingest.RawDataset
	if err := c.BodyParser(&raw); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := ingest.Convert(raw, ic.Cfg.ListenRateScale())
	if err != nil {
		if errors.Is(err, ingest.ErrMissingStudentID) {
			return utils.BadRequest(c, "Missing student_id")
		}
		return utils.InternalServerError(c, "Failed to convert dataset")
	}

	var student models.Student
	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		// Снимок заменяется целиком, а не сливается со старым.
		if err := tx.Where(models.Student{PublicID: result.Student.PublicID}).
			Attrs(models.Student{Name: result.Student.Name}).
			FirstOrCreate(&student).Error; err != nil {
			return err
		}
		if student.Name != result.Student.Name && result.Student.Name != "" {
			student.Name = result.Student.Name
			if err := tx.Save(&student).Error; err != nil {
				return err
			}
		}

		for _, model := range []interface{}{
			&models.SessionLog{}, &models.UpcomingClass{}, &models.ForgettingCurveEntry{},
		} {
			if err := tx.Unscoped().Where("student_id = ?", student.ID).Delete(model).Error; err != nil {
				return err
			}
		}

		for i := range result.Sessions {
			result.Sessions[i].StudentID = student.ID
		}
		for i := range result.Upcoming {
			result.Upcoming[i].StudentID = student.ID
		}
		for i := range result.Curve {
			result.Curve[i].StudentID = student.ID
		}

		if len(result.Sessions) > 0 {
			if err := tx.Create(&result.Sessions).Error; err != nil {
				return err
			}
		}
		if len(result.Upcoming) > 0 {
			if err := tx.Create(&result.Upcoming).Error; err != nil {
				return err
			}
		}
		if len(result.Curve) > 0 {
			if err := tx.Create(&result.Curve).Error; err != nil {
				return err
			}
		}

		batch := models.ImportBatch{
			BatchID:   uuid.NewString(),
			StudentID: student.ID,
			Sessions:  len(result.Sessions),
			Upcoming:  len(result.Upcoming),
			CurveRows: len(result.Curve),
			Skipped:   len(result.Issues),
			Payload:   datatypes.JSON(c.Body()),
		}
		return tx.Create(&batch).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Failed to store dataset")
	}

	return utils.Created(c, fiber.Map{
		"student_id": student.PublicID,
		"sessions":   len(result.Sessions),
		"upcoming":   len(result.Upcoming),
		"curve_rows": len(result.Curve),
		"skipped":    len(result.Issues),
		"issues":     result.Issues,
	})
}

// GetImportBatches godoc
// @Summary List import batches
// @Description Returns the import audit log, newest first
// @Tags import
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /import/batches [get]
func (ic *ImportController) GetImportBatches(c *fiber.Ctx) error {
	var batches []models.ImportBatch
	if err := ic.DB.Order("created_at DESC").Limit(50).Find(&batches).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch import batches")
	}

	var result []fiber.Map
	for _, b := range batches {
		result = append(result, fiber.Map{
			"batch_id":   b.BatchID,
			"student_id": b.StudentID,
			"sessions":   b.Sessions,
			"upcoming":   b.Upcoming,
			"curve_rows": b.CurveRows,
			"skipped":    b.Skipped,
			"created_at": b.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}
