package models

import "testing"

func TestCanDecide(t *testing.T) {
	if !CanDecide(LeavePending) {
		t.Fatal("pending requests must be decidable")
	}
	if CanDecide(LeaveApproved) {
		t.Fatal("approved is terminal, cannot be decided again")
	}
	if CanDecide(LeaveRejected) {
		t.Fatal("rejected is terminal, cannot be decided again")
	}
	if CanDecide("") {
		t.Fatal("unknown status must not be decidable")
	}
}
