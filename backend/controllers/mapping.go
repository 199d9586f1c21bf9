package controllers

import (
	"sort"

	"dashboard/backend/analytics"
	"dashboard/backend/models"
)

// Преобразования между строками базы, типами движка и структурами ответов.

func toRecords(rows []models.SessionLog) []analytics.SessionRecord {
	records := make([]analytics.SessionRecord, len(rows))
	for i, r := range rows {
		records[i] = analytics.SessionRecord{
			Date:       r.Date,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			ListenRate: r.ListenRate,
			Subject:    r.Subject,
			Teacher:    r.Teacher,
		}
	}
	return records
}

func toEntries(rows []models.ForgettingCurveEntry) []analytics.RepetitionEntry {
	entries := make([]analytics.RepetitionEntry, len(rows))
	for i, r := range rows {
		entries[i] = analytics.RepetitionEntry{
			ID:               r.ID,
			RepetitionDate:   r.RepetitionDate,
			CurveID:          r.CurveID,
			RepetitionNumber: r.RepetitionNumber,
			Completed:        r.LearnedAt != nil,
		}
	}
	return entries
}

func sessionRows(records []analytics.SessionRecord) []models.SessionRow {
	rows := make([]models.SessionRow, len(records))
	for i, r := range records {
		rows[i] = models.SessionRow{
			Date:       r.Date,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			ListenRate: r.ListenRate,
			Tier:       string(analytics.TierFor(r.ListenRate)),
			Subject:    r.Subject,
			Teacher:    r.Teacher,
		}
	}
	return rows
}

func repetitionRows(entries []analytics.RepetitionEntry) []models.RepetitionRow {
	rows := make([]models.RepetitionRow, len(entries))
	for i, e := range entries {
		rows[i] = models.RepetitionRow{
			ID:               e.ID,
			RepetitionDate:   e.RepetitionDate,
			CurveID:          e.CurveID,
			RepetitionNumber: e.RepetitionNumber,
		}
	}
	return rows
}

func upcomingRows(classes []models.UpcomingClass) []models.UpcomingRow {
	rows := make([]models.UpcomingRow, len(classes))
	for i, u := range classes {
		rows[i] = models.UpcomingRow{
			Date:          u.Date,
			StartTime:     u.StartTime,
			EndTime:       u.EndTime,
			Subject:       u.Subject,
			Teacher:       u.Teacher,
			Room:          u.RoomID,
			SessionTempID: u.SessionTempID,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}
