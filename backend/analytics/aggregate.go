package analytics

import (
	"math"
	"time"
)

// Summary — сводные показатели по набору сессий (карточки в шапке дашборда).
type Summary struct {
	Count             int     `json:"count"`
	AverageListenRate float64 `json:"average_listen_rate"`
}

// Aggregate считает количество сессий и среднюю долю внимания,
// округлённую до одного знака. Пустой набор — валидное состояние:
// {0, 0}, не ошибка.
func Aggregate(sessions []SessionRecord) Summary {
	if len(sessions) == 0 {
		return Summary{}
	}

	var sum float64
	for _, s := range sessions {
		sum += s.ListenRate
	}
	return Summary{
		Count:             len(sessions),
		AverageListenRate: round1(sum / float64(len(sessions))),
	}
}

// ByDay возвращает среднюю долю внимания по каждому дню,
// в котором была хотя бы одна сессия. Ключ — нормализованный день.
func ByDay(sessions []SessionRecord) map[time.Time]float64 {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, s := range sessions {
		day := DayOf(s.Date)
		sums[day] += s.ListenRate
		counts[day]++
	}

	avgs := make(map[time.Time]float64, len(sums))
	for day, sum := range sums {
		avgs[day] = sum / float64(counts[day])
	}
	return avgs
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
