package analytics

import (
	"fmt"
	"sort"
	"time"
)

// Period — именованное относительное окно времени, привязанное к «сейчас».
type Period string

const (
	PeriodAllTime     Period = "all-time"
	PeriodLast7Days   Period = "last-7-days"
	PeriodLast30Days  Period = "last-30-days"
	PeriodThisMonth   Period = "this-month"
	PeriodLast3Months Period = "last-3-months"
	PeriodThisYear    Period = "this-year"
)

// Valid сообщает, известно ли имя периода.
func (p Period) Valid() bool {
	switch p {
	case PeriodAllTime, PeriodLast7Days, PeriodLast30Days,
		PeriodThisMonth, PeriodLast3Months, PeriodThisYear:
		return true
	}
	return false
}

// Start возвращает нормализованное начало окна относительно now.
// Для all-time окно не ограничено: bounded == false.
func (p Period) Start(now time.Time) (start time.Time, bounded bool) {
	switch p {
	case PeriodLast7Days:
		return DayOf(now.AddDate(0, 0, -7)), true
	case PeriodLast30Days:
		return DayOf(now.AddDate(0, 0, -30)), true
	case PeriodThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), true
	case PeriodLast3Months:
		// time.Date нормализует месяц <= 0, так что переход через
		// границу года даёт октябрь-декабрь предыдущего года.
		return time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, time.Local), true
	case PeriodThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// FilterSessions отбирает сессии, чей день попадает в окно периода
// [start, сегодня] включительно, и сортирует результат по дате по убыванию.
// all-time возвращает весь набор. Неизвестный период — ErrUnknownPeriod:
// тихо откатываться на all-time вызывающему нельзя.
func FilterSessions(sessions []SessionRecord, p Period, now time.Time) ([]SessionRecord, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, string(p))
	}

	out := make([]SessionRecord, 0, len(sessions))
	if start, bounded := p.Start(now); bounded {
		today := DayOf(now)
		for _, s := range sessions {
			day := DayOf(s.Date)
			if !day.Before(start) && !day.After(today) {
				out = append(out, s)
			}
		}
	} else {
		out = append(out, sessions...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
