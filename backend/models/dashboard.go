package models

import "time"

// Структуры ответов дашборда. Движок отдаёт значения без
// форматирования — строки дат и времени собирает клиент.

type SessionRow struct {
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ListenRate float64   `json:"listen_rate"`
	Tier       string    `json:"tier"` // green, yellow, red
	Subject    string    `json:"subject"`
	Teacher    string    `json:"teacher"`
}

type UpcomingRow struct {
	Date          time.Time `json:"date"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Subject       string    `json:"subject"`
	Teacher       string    `json:"teacher"`
	Room          string    `json:"room"`
	SessionTempID string    `json:"session_temp_id"`
}

type RepetitionRow struct {
	ID               uint      `json:"id"`
	RepetitionDate   time.Time `json:"repetition_date"`
	CurveID          string    `json:"curve_id"`
	RepetitionNumber int       `json:"repetition_number"`
}

// DashboardSummary — значения пяти карточек в шапке дашборда.
type DashboardSummary struct {
	TotalSessions     int     `json:"total_sessions"`
	AverageListenRate float64 `json:"average_listen_rate"`
	PendingReps       int     `json:"pending_reps"`
	RepsDueToday      int     `json:"reps_due_today"`
	RepsDueTomorrow   int     `json:"reps_due_tomorrow"`
}
