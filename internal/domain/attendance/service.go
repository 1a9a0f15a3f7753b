package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the authenticated employee's check-in for today,
	// scores it and awards XP when the event qualifies
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut records the check-out on today's event
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves events for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves events with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
