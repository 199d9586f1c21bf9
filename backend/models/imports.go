package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportBatch — журнал импорта снимка данных студента.
// Сырой payload сохраняется как есть для разбора жалоб на данные.
type ImportBatch struct {
	gorm.Model
	BatchID   string `gorm:"uniqueIndex;not null"`
	StudentID uint   `gorm:"index"`
	Sessions  int
	Upcoming  int
	CurveRows int
	Skipped   int
	Payload   datatypes.JSON
}
