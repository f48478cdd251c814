package models

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// CanDecide reports whether a request in the given status may still be
// decided. Approved and Rejected are terminal.
func CanDecide(status string) bool {
	return status == LeavePending
}

type LeaveRequest struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

type LeaveWithUser struct {
	LeaveRequest
	Name       string `json:"name"`
	Department string `json:"department"`
}

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}
