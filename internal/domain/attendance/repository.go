package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance events.
// Civil dates are passed as YYYY-MM-DD strings already derived in the
// deployment timezone; the repository never does timezone math.
type AttendanceRepository interface {
	// Create creates a new attendance event (check-in)
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update sets the check-out timestamp on an existing event
	Update(ctx context.Context, attendance Attendance) error

	// GetByEmployeeAndDate retrieves the event for one employee on one date.
	// Returns nil when no event exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (*Attendance, error)

	// ListByDate retrieves all events for a date with employee and unit joined
	ListByDate(ctx context.Context, dateLocal string) ([]Attendance, error)

	// ListByMonth retrieves all events in a month with employee joined
	ListByMonth(ctx context.Context, year int, month int) ([]Attendance, error)

	// ListByEmployeeAndMonth retrieves one employee's events in a month
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month int) ([]Attendance, error)

	// HasCheckedIn reports whether an event already exists for the employee and date
	HasCheckedIn(ctx context.Context, employeeID string, dateLocal string) (bool, error)

	// List retrieves events with filters and pagination (admin)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
