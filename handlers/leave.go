package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"attendance_backend/models"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	db *sql.DB
}

func NewLeaveHandler(db *sql.DB) *LeaveHandler {
	return &LeaveHandler{db: db}
}

// SubmitLeave files a new request for the authenticated user. Requests
// always start out Pending.
func (h *LeaveHandler) SubmitLeave(c *gin.Context) {
	userID := c.GetInt("userID")

	var req models.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// YYYY-MM-DD strings order lexically
	if req.EndDate < req.StartDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must not be after end_date"})
		return
	}

	leave := models.LeaveRequest{
		UserID:    userID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}
	err := h.db.QueryRow(`
        INSERT INTO leave_requests (user_id, leave_type, start_date, end_date, reason, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, userID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, models.LeavePending).Scan(&leave.ID)

	if err != nil {
		log.Printf("Error creating leave request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create leave request"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// GetLeaves lists requests joined with the requester, newest first.
// Managers see everyone's, employees only their own.
func (h *LeaveHandler) GetLeaves(c *gin.Context) {
	query := `
        SELECT
            l.id,
            l.user_id,
            l.leave_type,
            l.start_date,
            l.end_date,
            l.reason,
            l.status,
            u.name,
            u.department
        FROM leave_requests l
        JOIN users u ON u.id = l.user_id
    `
	params := []interface{}{}

	if c.GetString("userRole") != models.RoleManager {
		query += " WHERE l.user_id = $1"
		params = append(params, c.GetInt("userID"))
	}

	query += " ORDER BY l.id DESC"

	rows, err := h.db.Query(query, params...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leave requests"})
		return
	}
	defer rows.Close()

	leaves := make([]models.LeaveWithUser, 0)
	for rows.Next() {
		var leave models.LeaveWithUser
		err := rows.Scan(
			&leave.ID,
			&leave.UserID,
			&leave.LeaveType,
			&leave.StartDate,
			&leave.EndDate,
			&leave.Reason,
			&leave.Status,
			&leave.Name,
			&leave.Department,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan leave request"})
			return
		}
		leaves = append(leaves, leave)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leave requests"})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// DecideLeave approves or rejects a pending request. Approved and
// Rejected are terminal: deciding an already decided request fails. The
// status predicate in the UPDATE keeps two concurrent decisions from
// both winning.
func (h *LeaveHandler) DecideLeave(c *gin.Context) {
	leaveID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leave request id"})
		return
	}

	var req models.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var currentStatus string
	err = h.db.QueryRow(`SELECT status FROM leave_requests WHERE id = $1`, leaveID).Scan(&currentStatus)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leave request not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leave request"})
		return
	}

	if !models.CanDecide(currentStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": "Leave request has already been decided"})
		return
	}

	result, err := h.db.Exec(`
        UPDATE leave_requests
        SET status = $1
        WHERE id = $2 AND status = $3
    `, req.Status, leaveID, models.LeavePending)
	if err != nil {
		log.Printf("Error updating leave request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update leave request"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify update"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Leave request has already been decided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": leaveID, "status": req.Status})
}
