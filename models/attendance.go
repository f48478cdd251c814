package models

import "time"

// Stored attendance statuses. Absence is never stored: a missing row for a
// date means the user did not check in, and reports derive it from that.
const (
	StatusPresent = "present"
	StatusLate    = "late"
)

type AttendanceRecord struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Date        string    `json:"date"` // YYYY-MM-DD, server-local
	CheckInTime time.Time `json:"check_in_time"`
	Status      string    `json:"status"`
}

type AttendanceWithUser struct {
	AttendanceRecord
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// DailySummary is the manager headcount view for a single date.
type DailySummary struct {
	Date       string `json:"date"`
	TotalUsers int    `json:"total_users"`
	CheckedIn  int    `json:"checked_in"` // present + late
	OnTime     int    `json:"on_time"`
	Late       int    `json:"late"`
	Absent     int    `json:"absent"` // total_users - checked_in
}

// PeriodSummary tallies one user's attendance over a date window.
// Absent is derived from business days, not from stored rows.
type PeriodSummary struct {
	UserID       int    `json:"user_id"`
	From         string `json:"from"`
	To           string `json:"to"`
	Present      int    `json:"present"`
	Late         int    `json:"late"`
	BusinessDays int    `json:"business_days"`
	Absent       int    `json:"absent"`
}
