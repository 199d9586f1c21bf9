// Package ingest превращает сырой снимок данных студента (формат
// табличного источника) в модели приложения. Разбор терпимый к
// данным: битая запись исключается с диагностикой, остальные
// записи снимка обрабатываются дальше.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"dashboard/backend/analytics"
	"dashboard/backend/models"
)

// RawDataset — контракт входного снимка от источника данных.
type RawDataset struct {
	StudentName     string        `json:"student_name"`
	StudentID       string        `json:"student_id"`
	SessionLog      []RawSession  `json:"session_log"`
	UpcomingClasses []RawUpcoming `json:"upcoming_classes"`
	ForgettingCurve []RawCurveRow `json:"forgetting_curve"`
}

type RawSession struct {
	Date              string   `json:"date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	StudentListenRate *float64 `json:"student_listen_rate"` // сырая оценка 0..max
	Subject           string   `json:"subject"`
	Teacher           string   `json:"teacher"`
}

type RawUpcoming struct {
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Subject       string `json:"subject"`
	Teacher       string `json:"teacher"`
	ClassRoomID   string `json:"class_room_id"`
	SessionTempID string `json:"session_temp_id"`
}

type RawCurveRow struct {
	RepetitionDate string `json:"repetition_date"`
	CurveID        string `json:"curve_id"`
	RepetitionNo   int    `json:"repetition_no"`
	// Пустая строка — повторение ещё не выполнено, любое другое
	// значение отмечает выполнение (так ведёт таблицу источник).
	LearnedUpdate string `json:"learned_update"`
}

// Issue — диагностика по одной отброшенной или урезанной записи.
type Issue struct {
	Table  string `json:"table"` // session_log, upcoming_classes, forgetting_curve
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Result — разобранный снимок плюс диагностика.
type Result struct {
	Student  models.Student
	Sessions []models.SessionLog
	Upcoming []models.UpcomingClass
	Curve    []models.ForgettingCurveEntry
	Issues   []Issue
}

var ErrMissingStudentID = errors.New("dataset without student_id")

// Convert разбирает снимок. scale — множитель перевода сырой оценки
// внимания в проценты (см. config.ListenRateScale). Запись с битой
// датой или оценкой исключается и получает Issue; битое время начала
// или конца не выбрасывает запись, она нужна таблице хотя бы с датой.
func Convert(raw RawDataset, scale float64) (Result, error) {
	if raw.StudentID == "" {
		return Result{}, ErrMissingStudentID
	}

	res := Result{
		Student: models.Student{PublicID: raw.StudentID, Name: raw.StudentName},
	}

	for i, row := range raw.SessionLog {
		day, err := analytics.ParseDay(row.Date)
		if err != nil {
			res.Issues = append(res.Issues, issue("session_log", i, "date", err))
			continue
		}
		if row.StudentListenRate == nil {
			res.Issues = append(res.Issues, issue("session_log", i, "student_listen_rate",
				errors.New("missing value")))
			continue
		}
		rate := *row.StudentListenRate * scale
		if rate < 0 || rate > 100 {
			res.Issues = append(res.Issues, issue("session_log", i, "student_listen_rate",
				fmt.Errorf("value %v out of scale", *row.StudentListenRate)))
			continue
		}

		s := models.SessionLog{
			Date:       day,
			ListenRate: rate,
			Subject:    row.Subject,
			Teacher:    row.Teacher,
		}
		s.StartTime = parseStampSoft(&res.Issues, "session_log", i, "start_time", row.StartTime)
		s.EndTime = parseStampSoft(&res.Issues, "session_log", i, "end_time", row.EndTime)
		res.Sessions = append(res.Sessions, s)
	}

	for i, row := range raw.UpcomingClasses {
		day, err := analytics.ParseDay(row.Date)
		if err != nil {
			res.Issues = append(res.Issues, issue("upcoming_classes", i, "date", err))
			continue
		}
		u := models.UpcomingClass{
			Date:          day,
			Subject:       row.Subject,
			Teacher:       row.Teacher,
			RoomID:        row.ClassRoomID,
			SessionTempID: row.SessionTempID,
		}
		u.StartTime = parseStampSoft(&res.Issues, "upcoming_classes", i, "start_time", row.StartTime)
		u.EndTime = parseStampSoft(&res.Issues, "upcoming_classes", i, "end_time", row.EndTime)
		res.Upcoming = append(res.Upcoming, u)
	}

	now := time.Now()
	for i, row := range raw.ForgettingCurve {
		day, err := analytics.ParseDay(row.RepetitionDate)
		if err != nil {
			res.Issues = append(res.Issues, issue("forgetting_curve", i, "repetition_date", err))
			continue
		}
		e := models.ForgettingCurveEntry{
			RepetitionDate:   day,
			CurveID:          row.CurveID,
			RepetitionNumber: row.RepetitionNo,
		}
		if row.LearnedUpdate != "" {
			// Источник не хранит момент выполнения, только отметку.
			if learned, perr := analytics.ParseStamp(row.LearnedUpdate); perr == nil {
				e.LearnedAt = &learned
			} else {
				e.LearnedAt = &now
			}
		}
		res.Curve = append(res.Curve, e)
	}

	return res, nil
}

func issue(table string, index int, field string, err error) Issue {
	return Issue{Table: table, Index: index, Field: field, Reason: err.Error()}
}

func parseStampSoft(issues *[]Issue, table string, index int, field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := analytics.ParseStamp(value)
	if err != nil {
		*issues = append(*issues, issue(table, index, field, err))
		return time.Time{}
	}
	return t
}
