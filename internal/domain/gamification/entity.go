package gamification

import (
	"time"
)

// XpLog is one append-only ledger entry. The ledger is the sole source of
// truth for cumulative XP; entries are immutable once written.
type XpLog struct {
	ID         string
	EmployeeID string
	XpDelta    int64
	Reason     XpReason
	// SourceID identifies the event that produced the delta (for check-ins,
	// the attendance event id). (reason, source_id) is unique, so a retried
	// append is absorbed instead of double-crediting.
	SourceID  string
	CreatedAt time.Time

	// DTO
	EmployeeName *string
}

type XpReason string

const (
	XpReasonCheckIn    XpReason = "check_in"
	XpReasonAdjustment XpReason = "adjustment"
)

// EmployeeXpTotal pairs an employee with a summed XP quantity, either for a
// month or all-time depending on the query.
type EmployeeXpTotal struct {
	EmployeeID   string
	EmployeeName *string
	TotalXp      int64
}
