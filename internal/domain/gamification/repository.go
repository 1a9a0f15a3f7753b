package gamification

import (
	"context"
)

// XpLogRepository is the append-only ledger. Appends for the same employee
// are serialized by the database row lock on the maintained total; appends
// for different employees are independent.
type XpLogRepository interface {
	// Append writes one ledger entry and bumps the employee's maintained
	// total by exactly the delta, in one transaction. Returns false when an
	// entry with the same (reason, source_id) already exists; the replay is
	// absorbed and nothing changes.
	Append(ctx context.Context, entry XpLog) (bool, error)

	// GetMaintainedTotal reads the incrementally maintained cumulative XP
	GetMaintainedTotal(ctx context.Context, employeeID string) (int64, error)

	// MonthlyTotals sums deltas per employee for entries whose timestamp
	// falls in the month, employee names joined
	MonthlyTotals(ctx context.Context, year int, month int) ([]EmployeeXpTotal, error)

	// MaintainedTotals returns every maintained per-employee total
	MaintainedTotals(ctx context.Context) ([]EmployeeXpTotal, error)

	// LedgerTotals recomputes every per-employee total from the full ledger
	LedgerTotals(ctx context.Context) ([]EmployeeXpTotal, error)

	// GlobalTotals reduces the ledger to the all-time XP sum and the count
	// of employees with at least one entry
	GlobalTotals(ctx context.Context) (totalXp int64, activeEmployees int64, err error)

	// SetMaintainedTotal overwrites an employee's maintained total. Used only
	// by reconciliation when the ledger sum and the counter disagree.
	SetMaintainedTotal(ctx context.Context, employeeID string, total int64) error
}
