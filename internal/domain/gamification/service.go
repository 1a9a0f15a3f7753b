package gamification

import (
	"context"
	"time"
)

type GamificationService interface {
	// AwardCheckInXp converts a check-in event into an XP ledger entry.
	// Returns (nil, nil) when the event does not qualify for XP.
	AwardCheckInXp(ctx context.Context, employeeID string, attendanceID string, clockIn time.Time, date time.Time) (*XpLog, error)
	GetMonthlyLeaderboard(ctx context.Context, period string, limit int) (*MonthlyLeaderboardResponse, error)
	GetCumulativeXp(ctx context.Context, employeeID string) (*XpSummary, error)
	GetLevelDistribution(ctx context.Context) (*LevelDistribution, error)
	GetOverview(ctx context.Context) (*Overview, error)
	// ReconcileTotals verifies every maintained total equals its ledger sum
	// and repairs drift. Returns the number of repaired rows.
	ReconcileTotals(ctx context.Context) (int, error)
}
