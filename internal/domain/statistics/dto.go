package statistics

import (
	"github.com/shopspring/decimal"
)

// PercentageResult is the attendance percentage for one employee-month.
// The same struct is returned to admin and self-service callers; both go
// through the same computation.
type PercentageResult struct {
	EmployeeID          string          `json:"employee_id"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	AttendedDays        int             `json:"attended_days"`
	PresentLateDays     int             `json:"present_late_days"`
	RequiredWorkingDays int             `json:"required_working_days"`
	Percentage          decimal.Decimal `json:"percentage"`
}

// MonthlyOverview breaks one employee-month into day categories. Present,
// present-late and absent are distinct; a late day is never an absent day.
type MonthlyOverview struct {
	EmployeeID   string `json:"employee_id"`
	Period       string `json:"period"`
	PresentDays  int    `json:"present_days"`
	LateDays     int    `json:"late_days"`
	AbsentDays   int    `json:"absent_days"`
	WorkingDays  int    `json:"working_days"`
}
