// Package analytics содержит чистую логику дашборда прогресса:
// нормализацию дат, фильтрацию по периодам, агрегацию сессий,
// классификацию повторений и построение календаря.
// Пакет не обращается к базе и не хранит состояние между вызовами —
// все функции считают результат заново по переданному снимку данных.
package analytics

import "time"

// SessionRecord — одна проведённая сессия занятия.
type SessionRecord struct {
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ListenRate float64   `json:"listen_rate"` // процент 0..100
	Subject    string    `json:"subject"`
	Teacher    string    `json:"teacher"`
}

// RepetitionEntry — одно запланированное повторение по кривой забывания.
type RepetitionEntry struct {
	ID               uint      `json:"id"`
	RepetitionDate   time.Time `json:"repetition_date"`
	CurveID          string    `json:"curve_id"`
	RepetitionNumber int       `json:"repetition_number"`
	Completed        bool      `json:"completed"`
}
