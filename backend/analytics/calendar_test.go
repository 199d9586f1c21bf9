package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForThresholds(t *testing.T) {
	tests := []struct {
		rate float64
		want Tier
	}{
		{100, TierGreen},
		{90, TierGreen}, // граница включающая
		{89.9, TierYellow},
		{75, TierYellow}, // граница включающая
		{74.9, TierRed},
		{0, TierRed},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TierFor(tc.rate), "rate %v", tc.rate)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February)) // високосный
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.March))
	assert.Equal(t, 30, DaysIn(2024, time.April))
}

func TestBuildMonthLeadingBlanks(t *testing.T) {
	// 1 марта 2024 — пятница, значит пять пустых ячеек (вс..чт).
	cells := BuildMonth(nil, 2024, time.March)
	require.Len(t, cells, 5+31)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, cells[i].Day)
		assert.Equal(t, TierNone, cells[i].Tier)
	}
	assert.Equal(t, 1, cells[5].Day)
	assert.Equal(t, 31, cells[len(cells)-1].Day)
}

func TestBuildMonthEmptyAllNone(t *testing.T) {
	cells := BuildMonth(nil, 2024, time.March)
	for _, c := range cells {
		assert.Equal(t, TierNone, c.Tier)
	}
}

// День с сессиями 100% и 80% даёт среднее 90 — зелёный.
func TestBuildMonthDayAverageTier(t *testing.T) {
	day := localDay(2024, 3, 10)
	sessions := []SessionRecord{
		{Date: day.Add(9 * time.Hour), ListenRate: 100},
		{Date: day.Add(15 * time.Hour), ListenRate: 80},
	}

	cells := BuildMonth(sessions, 2024, time.March)
	var got CalendarCell
	for _, c := range cells {
		if c.Day == 10 {
			got = c
		}
	}
	assert.Equal(t, TierGreen, got.Tier)
}

func TestBuildMonthTiersPerDay(t *testing.T) {
	sessions := []SessionRecord{
		{Date: localDay(2024, 3, 5), ListenRate: 60},
		{Date: localDay(2024, 3, 6), ListenRate: 80},
		{Date: localDay(2024, 3, 7), ListenRate: 95},
		// сессия другого месяца не красит март
		{Date: localDay(2024, 4, 5), ListenRate: 95},
	}

	cells := BuildMonth(sessions, 2024, time.March)
	tiers := make(map[int]Tier)
	for _, c := range cells {
		if c.Day > 0 {
			tiers[c.Day] = c.Tier
		}
	}

	assert.Equal(t, TierRed, tiers[5])
	assert.Equal(t, TierYellow, tiers[6])
	assert.Equal(t, TierGreen, tiers[7])
	assert.Equal(t, TierNone, tiers[8])
}
