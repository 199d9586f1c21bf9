package analytics

import "time"

// EntryState — состояние одного повторения относительно «сегодня».
type EntryState int

const (
	StateCompleted EntryState = iota // повторение уже выполнено
	StateOverdue                     // не выполнено, срок раньше сегодняшнего дня
	StateDueToday                    // не выполнено, срок — сегодня
	StateDueTomorrow                 // не выполнено, срок — завтра
	StateFuture                      // не выполнено, срок позже завтрашнего дня
)

// StateOf классифицирует запись по флагу выполнения и календарному дню.
// Это единственное место, где заданы предикаты трёх корзин: корзины
// дальше собираются группировкой состояний, а не независимыми фильтрами.
func StateOf(e RepetitionEntry, today time.Time) EntryState {
	if e.Completed {
		return StateCompleted
	}

	day := DayOf(e.RepetitionDate)
	today = DayOf(today)
	switch {
	case day.Before(today):
		return StateOverdue
	case day.Equal(today):
		return StateDueToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return StateDueTomorrow
	}
	return StateFuture
}

// Buckets — три представления одного и того же снимка расписания.
// Pending включает просроченные и сегодняшние записи, DueToday —
// его подмножество, DueTomorrow не пересекается с остальными.
type Buckets struct {
	Pending     []RepetitionEntry `json:"pending"`
	DueToday    []RepetitionEntry `json:"due_today"`
	DueTomorrow []RepetitionEntry `json:"due_tomorrow"`
}

// Classify раскладывает записи по корзинам. Вход не изменяется,
// результат считается заново при каждом вызове.
func Classify(entries []RepetitionEntry, today time.Time) Buckets {
	b := Buckets{
		Pending:     []RepetitionEntry{},
		DueToday:    []RepetitionEntry{},
		DueTomorrow: []RepetitionEntry{},
	}
	for _, e := range entries {
		switch StateOf(e, today) {
		case StateOverdue:
			b.Pending = append(b.Pending, e)
		case StateDueToday:
			b.Pending = append(b.Pending, e)
			b.DueToday = append(b.DueToday, e)
		case StateDueTomorrow:
			b.DueTomorrow = append(b.DueTomorrow, e)
		}
	}
	return b
}
