package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *float64 { return &v }

func TestConvertScalesListenRate(t *testing.T) {
	raw := RawDataset{
		StudentID:   "STU-001",
		StudentName: "Alice",
		SessionLog: []RawSession{
			{Date: "2024-03-10", StartTime: "2024-03-10T09:00:00", EndTime: "2024-03-10T10:00:00",
				StudentListenRate: rate(4.5), Subject: "Math", Teacher: "Kim"},
		},
	}

	res, err := Convert(raw, 20) // шкала 0..5
	require.NoError(t, err)
	require.Len(t, res.Sessions, 1)
	assert.Empty(t, res.Issues)

	s := res.Sessions[0]
	assert.Equal(t, 90.0, s.ListenRate)
	assert.Equal(t, "Math", s.Subject)
	assert.Equal(t, 10, s.Date.Day())
	assert.Equal(t, 9, s.StartTime.Hour())
	assert.Equal(t, "STU-001", res.Student.PublicID)
	assert.Equal(t, "Alice", res.Student.Name)
}

func TestConvertMissingStudentID(t *testing.T) {
	_, err := Convert(RawDataset{StudentName: "NoID"}, 20)
	assert.ErrorIs(t, err, ErrMissingStudentID)
}

func TestConvertMalformedSessionDateSkipsRow(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		SessionLog: []RawSession{
			{Date: "not-a-date", StudentListenRate: rate(3)},
			{Date: "2024-03-11", StudentListenRate: rate(3)},
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	require.Len(t, res.Sessions, 1)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "session_log", res.Issues[0].Table)
	assert.Equal(t, 0, res.Issues[0].Index)
	assert.Equal(t, "date", res.Issues[0].Field)
}

func TestConvertMissingRateSkipsRow(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		SessionLog: []RawSession{
			{Date: "2024-03-11"},
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "student_listen_rate", res.Issues[0].Field)
}

func TestConvertRateOutOfScaleSkipsRow(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		SessionLog: []RawSession{
			{Date: "2024-03-11", StudentListenRate: rate(7)}, // 7*20 = 140%
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)
	require.Len(t, res.Issues, 1)
}

func TestConvertMalformedTimeKeepsRow(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		SessionLog: []RawSession{
			{Date: "2024-03-11", StartTime: "???", StudentListenRate: rate(4)},
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	require.Len(t, res.Sessions, 1)
	assert.True(t, res.Sessions[0].StartTime.IsZero())
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "start_time", res.Issues[0].Field)
}

func TestConvertCurveCompletionMarker(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		ForgettingCurve: []RawCurveRow{
			{RepetitionDate: "2024-03-10", CurveID: "C1", RepetitionNo: 1, LearnedUpdate: ""},
			{RepetitionDate: "2024-03-12", CurveID: "C1", RepetitionNo: 2, LearnedUpdate: "2024-03-12"},
			{RepetitionDate: "2024-03-14", CurveID: "C1", RepetitionNo: 3, LearnedUpdate: "done"},
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	require.Len(t, res.Curve, 3)

	assert.Nil(t, res.Curve[0].LearnedAt)
	require.NotNil(t, res.Curve[1].LearnedAt)
	assert.Equal(t, 12, res.Curve[1].LearnedAt.Day())
	// отметка без даты всё равно означает «выполнено»
	assert.NotNil(t, res.Curve[2].LearnedAt)
}

func TestConvertUpcomingClasses(t *testing.T) {
	raw := RawDataset{
		StudentID: "STU-001",
		UpcomingClasses: []RawUpcoming{
			{Date: "2024-03-20", StartTime: "2024-03-20T15:00:00", EndTime: "2024-03-20T16:00:00",
				Subject: "Physics", Teacher: "Lee", ClassRoomID: "R-2", SessionTempID: "TMP-9"},
			{Date: "bad"},
		},
	}

	res, err := Convert(raw, 20)
	require.NoError(t, err)
	require.Len(t, res.Upcoming, 1)
	require.Len(t, res.Issues, 1)

	u := res.Upcoming[0]
	assert.Equal(t, "R-2", u.RoomID)
	assert.Equal(t, "TMP-9", u.SessionTempID)
	assert.Equal(t, time.March, u.Date.Month())
}
