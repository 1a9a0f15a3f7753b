package statistics

import (
	"context"
)

// StatisticsService is the single computation behind every attendance
// percentage view. Admin and self-service surfaces must call the same
// methods; there is deliberately no second formula anywhere.
type StatisticsService interface {
	// GetAttendancePercentage computes the detailed percentage: required
	// working days exclude weekends and configured holidays
	GetAttendancePercentage(ctx context.Context, employeeID string, year int, month int) (PercentageResult, error)

	// GetAttendancePercentageSimple is the fast variant for multi-month
	// comparisons: holiday exclusion is skipped. It must agree with the
	// detailed variant for any month without holidays.
	GetAttendancePercentageSimple(ctx context.Context, employeeID string, year int, month int) (PercentageResult, error)

	// GetMonthlyOverview returns present/late/absent day counts for one
	// employee-month using the same qualification rule as the rankings
	GetMonthlyOverview(ctx context.Context, employeeID string, period string) (MonthlyOverview, error)
}
