package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

// Check-ins after 09:30:00 local time are late.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 30
)

// LocalDate returns the calendar date of t in the server's local timezone,
// so a check-in just after midnight lands on the right day regardless of UTC.
func LocalDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// IsLate reports whether a check-in at t falls after the cutoff.
// Exactly 09:30:00 still counts as on time.
func IsLate(t time.Time) bool {
	h, m, s := t.Local().Clock()
	if h != lateCutoffHour {
		return h > lateCutoffHour
	}
	return m > lateCutoffMinute || (m == lateCutoffMinute && s > 0)
}

// StartOfWeek rolls t back to the most recent Monday, at midnight local time.
// A Monday maps to itself.
func StartOfWeek(t time.Time) time.Time {
	t = t.Local()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of t's month, at midnight local time.
func StartOfMonth(t time.Time) time.Time {
	t = t.Local()
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// BusinessDays counts Mondays through Fridays in [from, to] inclusive.
// Returns 0 when from is after to.
func BusinessDays(from, to time.Time) int {
	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// SummarizePeriod tallies the records whose date falls within [from, to]
// inclusive. Absent days are derived: business days elapsed in the window
// (capped at today) minus days attended. Stored rows only ever carry
// present or late, so this is the only place absence exists.
func SummarizePeriod(userID int, records []models.AttendanceRecord, from, to, today string) models.PeriodSummary {
	summary := models.PeriodSummary{UserID: userID, From: from, To: to}

	for _, r := range records {
		if r.Date < from || r.Date > to {
			continue
		}
		switch r.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusLate:
			summary.Late++
		}
	}

	end := to
	if today < end {
		end = today
	}
	fromDay, errFrom := time.ParseInLocation(dateLayout, from, time.Local)
	endDay, errEnd := time.ParseInLocation(dateLayout, end, time.Local)
	if errFrom == nil && errEnd == nil {
		summary.BusinessDays = BusinessDays(fromDay, endDay)
	}
	if absent := summary.BusinessDays - summary.Present - summary.Late; absent > 0 {
		summary.Absent = absent
	}

	return summary
}

type AttendanceHandler struct {
	db *sql.DB
}

func NewAttendanceHandler(db *sql.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// CheckIn records today's attendance for the authenticated user. The
// lookup is a fast path; the UNIQUE(user_id, date) constraint is what
// actually guarantees one row per day under concurrent requests.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID := c.GetInt("userID")

	var userExists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&userExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}
	if !userExists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	date := LocalDate(now)

	var alreadyCheckedIn bool
	err = h.db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM attendance_records
            WHERE user_id = $1 AND date = $2
        )
    `, userID, date).Scan(&alreadyCheckedIn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing attendance"})
		return
	}
	if alreadyCheckedIn {
		c.JSON(http.StatusConflict, gin.H{"error": "Already checked in today"})
		return
	}

	status := models.StatusPresent
	if IsLate(now) {
		status = models.StatusLate
	}

	record := models.AttendanceRecord{
		UserID:      userID,
		Date:        date,
		CheckInTime: now,
		Status:      status,
	}
	err = h.db.QueryRow(`
        INSERT INTO attendance_records (user_id, date, check_in_time, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, userID, date, now, status).Scan(&record.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Lost the race against a concurrent check-in for the same day.
			c.JSON(http.StatusConflict, gin.H{"error": "Already checked in today"})
			return
		}
		log.Printf("Error creating attendance record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attendance record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetAllAttendance returns every record joined with the owning user,
// newest date first. Drives the manager table and exports.
func (h *AttendanceHandler) GetAllAttendance(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT
            a.id,
            a.user_id,
            a.date,
            a.check_in_time,
            a.status,
            u.name,
            u.department,
            u.email
        FROM attendance_records a
        JOIN users u ON u.id = a.user_id
        ORDER BY a.date DESC, a.id DESC
    `)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance records"})
		return
	}
	defer rows.Close()

	records := make([]models.AttendanceWithUser, 0)
	for rows.Next() {
		var record models.AttendanceWithUser
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&record.CheckInTime,
			&record.Status,
			&record.Name,
			&record.Department,
			&record.Email,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan attendance record"})
			return
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetUserHistory returns one user's records, newest date first.
// Employees can only read their own history.
func (h *AttendanceHandler) GetUserHistory(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if c.GetString("userRole") != models.RoleManager && c.GetInt("userID") != targetID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot view another user's attendance"})
		return
	}

	records, err := h.userRecords(targetID)
	if err != nil {
		log.Printf("Error fetching attendance history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetDailySummary returns the manager headcount for one date, today by
// default. Recomputed per request, nothing is cached.
func (h *AttendanceHandler) GetDailySummary(c *gin.Context) {
	date := c.DefaultQuery("date", LocalDate(time.Now()))
	if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary := models.DailySummary{Date: date}

	if err := h.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&summary.TotalUsers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	rows, err := h.db.Query(`
        SELECT status, COUNT(*)
        FROM attendance_records
        WHERE date = $1
        GROUP BY status
    `, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance counts"})
		return
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan attendance counts"})
			return
		}
		switch status {
		case models.StatusPresent:
			summary.OnTime = count
		case models.StatusLate:
			summary.Late = count
		}
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance counts"})
		return
	}

	summary.CheckedIn = summary.OnTime + summary.Late
	summary.Absent = summary.TotalUsers - summary.CheckedIn

	c.JSON(http.StatusOK, summary)
}

// GetPeriodSummary tallies one user's attendance over a window: the
// current week (back to Monday), the current month, or an explicit
// from/to pair. Employees can only read their own summary.
func (h *AttendanceHandler) GetPeriodSummary(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if c.GetString("userRole") != models.RoleManager && c.GetInt("userID") != targetID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot view another user's attendance"})
		return
	}

	now := time.Now()
	today := LocalDate(now)

	var from, to string
	switch c.DefaultQuery("period", "week") {
	case "week":
		from, to = LocalDate(StartOfWeek(now)), today
	case "month":
		from, to = LocalDate(StartOfMonth(now)), today
	case "custom":
		from, to = c.Query("from"), c.Query("to")
		if _, err := time.Parse(dateLayout, from); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		if _, err := time.Parse(dateLayout, to); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		if to < from {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be week, month or custom"})
		return
	}

	records, err := h.userRecords(targetID)
	if err != nil {
		log.Printf("Error fetching attendance history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance history"})
		return
	}

	c.JSON(http.StatusOK, SummarizePeriod(targetID, records, from, to, today))
}

func (h *AttendanceHandler) userRecords(userID int) ([]models.AttendanceRecord, error) {
	rows, err := h.db.Query(`
        SELECT id, user_id, date, check_in_time, status
        FROM attendance_records
        WHERE user_id = $1
        ORDER BY date DESC, id DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		var record models.AttendanceRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&record.CheckInTime,
			&record.Status,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
