package analytics

import (
	"fmt"
	"time"
)

// Форматы, в которых источник отдаёт даты и таймстампы.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// DayOf приводит момент времени к началу его календарного дня
// в локальной зоне. Две нормализованные даты равны тогда и только
// тогда, когда они приходятся на один локальный календарный день.
func DayOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay сообщает, приходятся ли два момента на один календарный день.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// ParseDay разбирает строку с датой/таймстампом и возвращает
// нормализованный день. Нераспознанный вход — ErrMalformedDate,
// а не тихая «кривая» дата, которая непредсказуемо ведёт себя в сравнениях.
func ParseDay(s string) (time.Time, error) {
	t, err := ParseStamp(s)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}

// ParseStamp разбирает строку в момент времени без усечения до дня.
// Форматы без зоны считаются локальным временем.
func ParseStamp(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}
