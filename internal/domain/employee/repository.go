package employee

import (
	"context"
)

// EmployeeRepository defines read access to the employee directory.
// The directory is owned by an external system; this core never writes to it.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees with their unit names
	ListActive(ctx context.Context) ([]Employee, error)

	// CountActive returns the number of active employees
	CountActive(ctx context.Context) (int64, error)
}
