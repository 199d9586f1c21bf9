package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id uint, due time.Time, completed bool) RepetitionEntry {
	return RepetitionEntry{
		ID:               id,
		RepetitionDate:   due,
		CurveID:          "CURVE-1",
		RepetitionNumber: int(id),
		Completed:        completed,
	}
}

func TestStateOf(t *testing.T) {
	today := localDay(2024, 3, 15)

	tests := []struct {
		name string
		e    RepetitionEntry
		want EntryState
	}{
		{"completed wins over any date", entry(1, localDay(2024, 3, 15), true), StateCompleted},
		{"overdue", entry(2, localDay(2024, 3, 10), false), StateOverdue},
		{"due today", entry(3, localDay(2024, 3, 15), false), StateDueToday},
		{"due tomorrow", entry(4, localDay(2024, 3, 16), false), StateDueTomorrow},
		{"future beyond tomorrow", entry(5, localDay(2024, 3, 17), false), StateFuture},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StateOf(tc.e, today))
		})
	}
}

// Запись со сроком в прошлом попадает в pending, но не в due-today/tomorrow.
func TestClassifyOverdueEntry(t *testing.T) {
	today := localDay(2024, 3, 15)
	b := Classify([]RepetitionEntry{entry(1, localDay(2024, 3, 10), false)}, today)

	require.Len(t, b.Pending, 1)
	assert.Empty(t, b.DueToday)
	assert.Empty(t, b.DueTomorrow)
}

// Запись со сроком завтра попадает только в due-tomorrow.
func TestClassifyTomorrowEntry(t *testing.T) {
	today := localDay(2024, 3, 15)
	b := Classify([]RepetitionEntry{entry(1, localDay(2024, 3, 16), false)}, today)

	assert.Empty(t, b.Pending)
	assert.Empty(t, b.DueToday)
	require.Len(t, b.DueTomorrow, 1)
}

// Выполненная запись не попадает ни в одну корзину независимо от даты.
func TestClassifyCompletedExcluded(t *testing.T) {
	today := localDay(2024, 3, 15)
	entries := []RepetitionEntry{
		entry(1, localDay(2024, 3, 1), true),
		entry(2, localDay(2024, 3, 15), true),
		entry(3, localDay(2024, 3, 16), true),
	}
	b := Classify(entries, today)

	assert.Empty(t, b.Pending)
	assert.Empty(t, b.DueToday)
	assert.Empty(t, b.DueTomorrow)
}

func TestClassifyInvariants(t *testing.T) {
	today := localDay(2024, 3, 15)
	entries := []RepetitionEntry{
		entry(1, localDay(2024, 3, 1), false),
		entry(2, localDay(2024, 3, 14), false),
		entry(3, localDay(2024, 3, 15), false),
		entry(4, localDay(2024, 3, 15), true),
		entry(5, localDay(2024, 3, 16), false),
		entry(6, localDay(2024, 4, 1), false),
	}
	b := Classify(entries, today)

	assert.Len(t, b.Pending, 3)
	assert.Len(t, b.DueToday, 1)
	assert.Len(t, b.DueTomorrow, 1)

	// due-today — подмножество pending
	pending := make(map[uint]bool)
	for _, e := range b.Pending {
		pending[e.ID] = true
	}
	for _, e := range b.DueToday {
		assert.True(t, pending[e.ID])
	}

	// due-tomorrow не пересекается с pending
	for _, e := range b.DueTomorrow {
		assert.False(t, pending[e.ID])
	}
}

// Время суток в дате повторения не влияет на классификацию.
func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 15, 18, 45, 0, 0, time.Local)
	due := time.Date(2024, 3, 15, 6, 0, 0, 0, time.Local)

	b := Classify([]RepetitionEntry{entry(1, due, false)}, today)
	require.Len(t, b.DueToday, 1)
	require.Len(t, b.Pending, 1)
}
