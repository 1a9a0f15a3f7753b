package ranking

import (
	"github.com/shopspring/decimal"
)

// Badge is derived from rank position on every call and never stored, so a
// recomputed ranking can never carry a stale badge.
type Badge string

const (
	BadgeGold   Badge = "gold"
	BadgeSilver Badge = "silver"
	BadgeBronze Badge = "bronze"
	BadgeNone   Badge = ""
)

// BadgeForRank maps a rank to its badge: top three ranks only.
func BadgeForRank(rank int) Badge {
	switch rank {
	case 1:
		return BadgeGold
	case 2:
		return BadgeSilver
	case 3:
		return BadgeBronze
	default:
		return BadgeNone
	}
}

// DailyRankingEntry is one employee's position for one civil date
type DailyRankingEntry struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	UnitName     *string `json:"unit_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  string  `json:"clock_in_time"`
	DailyScore   int     `json:"daily_score"`
	Rank         int     `json:"rank"`
	Badge        Badge   `json:"badge,omitempty"`
}

// MonthlyRankingEntry is one employee's position for one period
type MonthlyRankingEntry struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Period         string          `json:"period"`
	TotalScore     int             `json:"total_score"`
	AverageScore   decimal.Decimal `json:"average_score"`
	QualifyingDays int             `json:"qualifying_days"`
	Rank           int             `json:"rank"`
	Badge          Badge           `json:"badge,omitempty"`
}

// UnitRankingEntry is one organizational unit's position for one civil date.
// Units with zero qualifying members are excluded, never scored as zero.
type UnitRankingEntry struct {
	UnitID       string          `json:"unit_id"`
	UnitName     string          `json:"unit_name"`
	Date         string          `json:"date"`
	AverageScore decimal.Decimal `json:"average_score"`
	MemberCount  int             `json:"member_count"`
	Rank         int             `json:"rank"`
}

// DailyRankingResponse wraps a daily ranking list. SkippedRecords counts
// corrupt events that were skipped rather than aborting the aggregation.
type DailyRankingResponse struct {
	Date           string              `json:"date"`
	Entries        []DailyRankingEntry `json:"entries"`
	SkippedRecords int                 `json:"skipped_records"`
}

type MonthlyRankingResponse struct {
	Period         string                `json:"period"`
	Entries        []MonthlyRankingEntry `json:"entries"`
	SkippedRecords int                   `json:"skipped_records"`
}

type UnitRankingResponse struct {
	Date           string             `json:"date"`
	Entries        []UnitRankingEntry `json:"entries"`
	SkippedRecords int                `json:"skipped_records"`
}
