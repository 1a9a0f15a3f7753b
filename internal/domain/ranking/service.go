package ranking

import (
	"context"
)

// RankingService defines the ranking read surface. Dates are YYYY-MM-DD and
// periods YYYY-MM in the deployment timezone; malformed input is rejected
// before any aggregation begins.
type RankingService interface {
	// GetDailyRanking ranks qualifying employees for one date
	GetDailyRanking(ctx context.Context, date string) (DailyRankingResponse, error)

	// GetMonthlyRanking ranks employees with at least one qualifying day in the period
	GetMonthlyRanking(ctx context.Context, period string) (MonthlyRankingResponse, error)

	// GetUnitRanking ranks organizational units by average qualifying score for one date
	GetUnitRanking(ctx context.Context, date string) (UnitRankingResponse, error)
}
