package handlers

import (
	"testing"
	"time"

	"attendance_backend/models"
)

func localTime(hour, min, sec int) time.Time {
	return time.Date(2026, 2, 4, hour, min, sec, 0, time.Local)
}

func TestIsLateCutoff(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		late bool
	}{
		{"early morning", localTime(8, 59, 0), false},
		{"just before cutoff", localTime(9, 29, 59), false},
		{"exactly on cutoff", localTime(9, 30, 0), false},
		{"one second past", localTime(9, 30, 1), true},
		{"one minute past", localTime(9, 31, 0), true},
		{"mid morning", localTime(10, 0, 0), true},
		{"afternoon", localTime(15, 45, 12), true},
	}

	for _, tc := range cases {
		if got := IsLate(tc.at); got != tc.late {
			t.Errorf("%s: IsLate(%v) = %v, want %v", tc.name, tc.at, got, tc.late)
		}
	}
}

func TestLocalDateStableWithinDay(t *testing.T) {
	morning := localTime(9, 0, 0)
	evening := localTime(23, 59, 59)

	if LocalDate(morning) != LocalDate(evening) {
		t.Fatalf("dates differ within one day: %s vs %s", LocalDate(morning), LocalDate(evening))
	}
	if got := LocalDate(morning); got != "2026-02-04" {
		t.Fatalf("LocalDate = %q, want 2026-02-04", got)
	}
}

func TestStartOfWeekRollsBackToMonday(t *testing.T) {
	// 2026-02-02 is a Monday.
	cases := []struct {
		name string
		day  time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 2, 2, 12, 0, 0, 0, time.Local), "2026-02-02"},
		{"wednesday", time.Date(2026, 2, 4, 9, 0, 0, 0, time.Local), "2026-02-02"},
		{"sunday rolls to previous monday", time.Date(2026, 2, 8, 9, 0, 0, 0, time.Local), "2026-02-02"},
	}

	for _, tc := range cases {
		got := StartOfWeek(tc.day)
		if LocalDate(got) != tc.want {
			t.Errorf("%s: StartOfWeek = %s, want %s", tc.name, LocalDate(got), tc.want)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("%s: StartOfWeek landed on %s", tc.name, got.Weekday())
		}
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2026, 2, 17, 14, 30, 0, 0, time.Local))
	if LocalDate(got) != "2026-02-01" {
		t.Fatalf("StartOfMonth = %s, want 2026-02-01", LocalDate(got))
	}
}

func TestBusinessDays(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.Local)
	friday := time.Date(2026, 2, 6, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2026, 2, 7, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 2, 8, 0, 0, 0, 0, time.Local)

	if got := BusinessDays(monday, friday); got != 5 {
		t.Errorf("full work week = %d, want 5", got)
	}
	if got := BusinessDays(monday, sunday); got != 5 {
		t.Errorf("week including weekend = %d, want 5", got)
	}
	if got := BusinessDays(saturday, sunday); got != 0 {
		t.Errorf("weekend only = %d, want 0", got)
	}
	if got := BusinessDays(friday, monday); got != 0 {
		t.Errorf("inverted range = %d, want 0", got)
	}
	if got := BusinessDays(monday, monday); got != 1 {
		t.Errorf("single monday = %d, want 1", got)
	}
}

func record(id int, date, status string) models.AttendanceRecord {
	checkIn, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return models.AttendanceRecord{
		ID:          id,
		UserID:      7,
		Date:        date,
		CheckInTime: checkIn.Add(9 * time.Hour),
		Status:      status,
	}
}

func TestSummarizePeriodTalliesWindow(t *testing.T) {
	records := []models.AttendanceRecord{
		record(1, "2026-01-30", models.StatusPresent), // before window
		record(2, "2026-02-02", models.StatusPresent),
		record(3, "2026-02-03", models.StatusLate),
		record(4, "2026-02-04", models.StatusPresent),
	}

	got := SummarizePeriod(7, records, "2026-02-02", "2026-02-06", "2026-02-04")

	if got.Present != 2 || got.Late != 1 {
		t.Fatalf("tally = %d present / %d late, want 2/1", got.Present, got.Late)
	}
	if got.BusinessDays != 3 {
		t.Fatalf("business days = %d, want 3 (window capped at today)", got.BusinessDays)
	}
	if got.Absent != 0 {
		t.Fatalf("fully attended window reported %d absent days", got.Absent)
	}
}

func TestSummarizePeriodDerivesAbsence(t *testing.T) {
	records := []models.AttendanceRecord{
		record(1, "2026-02-02", models.StatusLate),
	}

	got := SummarizePeriod(7, records, "2026-02-02", "2026-02-28", "2026-02-05")

	// Mon 02-02 through Thu 02-05 is four business days, one attended.
	if got.BusinessDays != 4 {
		t.Fatalf("business days = %d, want 4", got.BusinessDays)
	}
	if got.Absent != 3 {
		t.Fatalf("absent = %d, want 3", got.Absent)
	}
}

func TestSummarizePeriodIgnoresUnknownStatuses(t *testing.T) {
	// Stored rows can only be present or late; anything else must not
	// leak into the tally.
	records := []models.AttendanceRecord{
		record(1, "2026-02-02", models.StatusPresent),
		record(2, "2026-02-03", "absent"),
	}

	got := SummarizePeriod(7, records, "2026-02-02", "2026-02-03", "2026-02-03")

	if got.Present != 1 || got.Late != 0 {
		t.Fatalf("tally = %d present / %d late, want 1/0", got.Present, got.Late)
	}
}

func TestSummarizePeriodEmptyHistory(t *testing.T) {
	got := SummarizePeriod(7, nil, "2026-02-02", "2026-02-06", "2026-02-06")

	if got.Present != 0 || got.Late != 0 {
		t.Fatalf("empty history tallied %d/%d", got.Present, got.Late)
	}
	if got.Absent != 5 {
		t.Fatalf("absent = %d, want 5", got.Absent)
	}
}
