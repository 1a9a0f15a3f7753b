package attendance

import (
	"time"
)

// Attendance is one employee's event for one civil date. It is created by
// check-in and mutated only by a later check-out on the same date.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
	UnitID       *string
	UnitName     *string
}
