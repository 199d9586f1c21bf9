package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;not null"` // student_id из источника данных
	Name     string `gorm:"not null"`
}

type SessionLog struct {
	gorm.Model
	StudentID  uint `gorm:"index"`
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	ListenRate float64 // процент 0..100, уже после масштабирования сырой оценки
	Subject    string
	Teacher    string
}

type UpcomingClass struct {
	gorm.Model
	StudentID     uint `gorm:"index"`
	Date          time.Time
	StartTime     time.Time
	EndTime       time.Time
	Subject       string
	Teacher       string
	RoomID        string
	SessionTempID string
}

type ForgettingCurveEntry struct {
	gorm.Model
	StudentID        uint `gorm:"index"`
	RepetitionDate   time.Time
	CurveID          string
	RepetitionNumber int
	// nil — повторение ещё не выполнено. Пустая строка learned_update
	// из источника превращается в nil один раз при импорте.
	LearnedAt *time.Time
}
