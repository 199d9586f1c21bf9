package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func sessionOn(day time.Time, rate float64) SessionRecord {
	return SessionRecord{Date: day, ListenRate: rate, Subject: "Math", Teacher: "Kim"}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{
		PeriodAllTime, PeriodLast7Days, PeriodLast30Days,
		PeriodThisMonth, PeriodLast3Months, PeriodThisYear,
	} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Period("last-fortnight").Valid())
	assert.False(t, Period("").Valid())
}

func TestPeriodStartWindows(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		period Period
		want   time.Time
	}{
		{PeriodLast7Days, localDay(2024, 3, 8)},
		{PeriodLast30Days, localDay(2024, 2, 14)},
		{PeriodThisMonth, localDay(2024, 3, 1)},
		{PeriodLast3Months, localDay(2023, 12, 1)},
		{PeriodThisYear, localDay(2024, 1, 1)},
	}
	for _, tc := range tests {
		start, bounded := tc.period.Start(now)
		require.True(t, bounded, string(tc.period))
		assert.True(t, start.Equal(tc.want), "%s: got %v", tc.period, start)
	}

	_, bounded := PeriodAllTime.Start(now)
	assert.False(t, bounded)
}

// Переход last-3-months через границу года: 15 января -> 1 октября.
func TestPeriodLast3MonthsYearRollback(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	start, bounded := PeriodLast3Months.Start(now)
	require.True(t, bounded)
	assert.True(t, start.Equal(localDay(2023, 10, 1)))
}

func TestFilterSessionsWindowInclusive(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	sessions := []SessionRecord{
		sessionOn(localDay(2024, 3, 15), 80), // сегодня
		sessionOn(localDay(2024, 3, 8), 70),  // ровно на границе окна
		sessionOn(localDay(2024, 3, 7), 60),  // за границей
		sessionOn(localDay(2024, 3, 20), 90), // в будущем
	}

	got, err := FilterSessions(sessions, PeriodLast7Days, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, localDay(2024, 3, 15), got[0].Date)
	assert.Equal(t, localDay(2024, 3, 8), got[1].Date)
}

func TestFilterSessionsAllTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	sessions := []SessionRecord{
		sessionOn(localDay(2024, 3, 10), 80),
		sessionOn(localDay(2020, 1, 1), 40),
		sessionOn(localDay(2024, 3, 20), 90),
	}

	got, err := FilterSessions(sessions, PeriodAllTime, now)
	require.NoError(t, err)
	assert.Len(t, got, len(sessions))

	// Содержимое полного набора не меняется, только порядок: по убыванию даты.
	assert.Equal(t, localDay(2024, 3, 20), got[0].Date)
	assert.Equal(t, localDay(2024, 3, 10), got[1].Date)
	assert.Equal(t, localDay(2020, 1, 1), got[2].Date)
}

func TestFilterSessionsDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	sessions := []SessionRecord{
		sessionOn(localDay(2020, 1, 1), 40),
		sessionOn(localDay(2024, 3, 10), 80),
	}

	_, err := FilterSessions(sessions, PeriodAllTime, now)
	require.NoError(t, err)
	assert.Equal(t, localDay(2020, 1, 1), sessions[0].Date)
}

func TestFilterSessionsUnknownPeriod(t *testing.T) {
	_, err := FilterSessions(nil, Period("last-century"), time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPeriod))
}
