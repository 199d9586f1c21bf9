package analytics

import "time"

// Tier — «здоровье» дня или сессии по доле внимания.
type Tier string

const (
	TierNone   Tier = "none"
	TierRed    Tier = "red"
	TierYellow Tier = "yellow"
	TierGreen  Tier = "green"
)

// Пороги общие для строк таблицы и ячеек календаря, чтобы оба
// представления не могли разойтись.
const (
	tierGreenFrom  = 90.0
	tierYellowFrom = 75.0
)

// TierFor переводит долю внимания в уровень. Границы включающие:
// 90 — уже зелёный, 75 — уже жёлтый.
func TierFor(rate float64) Tier {
	switch {
	case rate >= tierGreenFrom:
		return TierGreen
	case rate >= tierYellowFrom:
		return TierYellow
	}
	return TierRed
}

// CalendarCell — одна ячейка сетки месяца. Day == 0 — ведущая
// пустая ячейка для выравнивания первого числа по дню недели.
type CalendarCell struct {
	Day  int  `json:"day"`
	Tier Tier `json:"tier"`
}

// DaysIn возвращает число дней в месяце.
func DaysIn(year int, month time.Month) int {
	// нулевой день следующего месяца — последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// BuildMonth строит ячейки календаря месяца: сначала пустые ячейки
// по номеру дня недели первого числа (0 — воскресенье), затем по
// ячейке на каждый день. День без сессий — TierNone, день с сессиями
// окрашивается по среднему за день.
func BuildMonth(sessions []SessionRecord, year int, month time.Month) []CalendarCell {
	byDay := ByDay(sessions)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday())
	days := DaysIn(year, month)

	cells := make([]CalendarCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, CalendarCell{Tier: TierNone})
	}
	for day := 1; day <= days; day++ {
		cell := CalendarCell{Day: day, Tier: TierNone}
		if avg, ok := byDay[time.Date(year, month, day, 0, 0, 0, 0, time.Local)]; ok {
			cell.Tier = TierFor(avg)
		}
		cells = append(cells, cell)
	}
	return cells
}
