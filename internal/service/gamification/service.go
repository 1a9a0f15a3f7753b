package gamification

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/domain/gamification"
	"github.com/echal/gembira-sub001/internal/pkg/validator"
	"github.com/echal/gembira-sub001/internal/service/scoring"
)

const defaultLeaderboardLimit = 10

// GamificationServiceImpl implements gamification.GamificationService
type GamificationServiceImpl struct {
	gamification.XpLogRepository
	employeeRepo employee.EmployeeRepository
	calculator   *scoring.Calculator
	levels       *LevelTable
	xpBase       int
	xpPerPoint   float64
}

func NewGamificationService(
	xpLogRepo gamification.XpLogRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *scoring.Calculator,
	levels *LevelTable,
	xpBase int,
	xpPerPoint float64,
) gamification.GamificationService {
	return &GamificationServiceImpl{
		XpLogRepository: xpLogRepo,
		employeeRepo:    employeeRepo,
		calculator:      calculator,
		levels:          levels,
		xpBase:          xpBase,
		xpPerPoint:      xpPerPoint,
	}
}

// xpForScore maps a daily score to an XP delta. The mapping is monotone: a
// higher score never earns less XP, and the delta is never negative.
func (s *GamificationServiceImpl) xpForScore(score int) int64 {
	delta := int64(s.xpBase) + int64(math.Floor(float64(score)*s.xpPerPoint))
	if delta < 0 {
		delta = 0
	}
	return delta
}

func (s *GamificationServiceImpl) AwardCheckInXp(ctx context.Context, employeeID string, attendanceID string, clockIn time.Time, date time.Time) (*gamification.XpLog, error) {
	event := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clockIn,
	}
	score, ok := s.calculator.Score(event)
	if !ok {
		return nil, nil
	}

	entry := gamification.XpLog{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		XpDelta:    s.xpForScore(score),
		Reason:     gamification.XpReasonCheckIn,
		SourceID:   attendanceID,
		CreatedAt:  clockIn,
	}
	applied, err := s.XpLogRepository.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to append xp log: %w", err)
	}
	if !applied {
		// replay of an already credited check-in
		return nil, nil
	}
	return &entry, nil
}

func (s *GamificationServiceImpl) GetMonthlyLeaderboard(ctx context.Context, period string, limit int) (*gamification.MonthlyLeaderboardResponse, error) {
	parsed, ok := validator.IsValidPeriod(period)
	if !ok {
		return nil, attendance.ErrInvalidPeriod
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	totals, err := s.XpLogRepository.MonthlyTotals(ctx, parsed.Year(), int(parsed.Month()))
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly xp totals: %w", err)
	}

	entries := buildLeaderboard(totals, period, limit)
	return &gamification.MonthlyLeaderboardResponse{
		Period:  period,
		Limit:   limit,
		Entries: entries,
	}, nil
}

// buildLeaderboard orders totals and assigns competition ranks: tied totals
// share a rank and the following rank skips past the tie group.
func buildLeaderboard(totals []gamification.EmployeeXpTotal, period string, limit int) []gamification.MonthlyLeaderboardEntry {
	sorted := make([]gamification.EmployeeXpTotal, len(totals))
	copy(sorted, totals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalXp != sorted[j].TotalXp {
			return sorted[i].TotalXp > sorted[j].TotalXp
		}
		return sorted[i].EmployeeID < sorted[j].EmployeeID
	})

	entries := make([]gamification.MonthlyLeaderboardEntry, 0, len(sorted))
	rank := 0
	for i, total := range sorted {
		if i == 0 || total.TotalXp != sorted[i-1].TotalXp {
			rank = i + 1
		}
		name := ""
		if total.EmployeeName != nil {
			name = *total.EmployeeName
		}
		entries = append(entries, gamification.MonthlyLeaderboardEntry{
			EmployeeID:   total.EmployeeID,
			EmployeeName: name,
			Period:       period,
			TotalXp:      total.TotalXp,
			Rank:         rank,
		})
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *GamificationServiceImpl) GetCumulativeXp(ctx context.Context, employeeID string) (*gamification.XpSummary, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	total, err := s.XpLogRepository.GetMaintainedTotal(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cumulative xp: %w", err)
	}

	return &gamification.XpSummary{
		EmployeeID:   employeeID,
		CumulativeXp: total,
		Level:        s.levels.LevelFor(total),
		NextLevelXp:  s.levels.NextThresholdXp(total),
	}, nil
}

func (s *GamificationServiceImpl) GetLevelDistribution(ctx context.Context) (*gamification.LevelDistribution, error) {
	totals, err := s.XpLogRepository.MaintainedTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get xp totals: %w", err)
	}
	employeeCount, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	return s.buildDistribution(totals, employeeCount), nil
}

// buildDistribution buckets every active employee into a level. Employees
// with no ledger entries land in the lowest level, so the buckets always sum
// to the employee count.
func (s *GamificationServiceImpl) buildDistribution(totals []gamification.EmployeeXpTotal, employeeCount int64) *gamification.LevelDistribution {
	counts := make(map[int]int64)
	for _, total := range totals {
		counts[s.levels.LevelFor(total.TotalXp)]++
	}
	withoutLedger := employeeCount - int64(len(totals))
	if withoutLedger > 0 {
		counts[s.levels.LowestLevel()] += withoutLedger
	}

	buckets := make([]gamification.LevelBucket, 0, len(s.levels.Levels()))
	for _, level := range s.levels.Levels() {
		buckets = append(buckets, gamification.LevelBucket{
			Level:         level,
			EmployeeCount: counts[level],
		})
	}
	return &gamification.LevelDistribution{
		Levels:         buckets,
		TotalEmployees: employeeCount,
	}
}

func (s *GamificationServiceImpl) GetOverview(ctx context.Context) (*gamification.Overview, error) {
	var (
		totalXp         int64
		activeEmployees int64
		distribution    *gamification.LevelDistribution
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalXp, activeEmployees, err = s.XpLogRepository.GlobalTotals(gctx)
		if err != nil {
			return fmt.Errorf("failed to get global xp totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		distribution, err = s.GetLevelDistribution(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &gamification.Overview{
		TotalXp:         totalXp,
		ActiveEmployees: activeEmployees,
		Distribution:    *distribution,
	}, nil
}

func (s *GamificationServiceImpl) ReconcileTotals(ctx context.Context) (int, error) {
	maintained, err := s.XpLogRepository.MaintainedTotals(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get maintained totals: %w", err)
	}
	ledger, err := s.XpLogRepository.LedgerTotals(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recompute ledger totals: %w", err)
	}

	maintainedByEmployee := make(map[string]int64, len(maintained))
	for _, total := range maintained {
		maintainedByEmployee[total.EmployeeID] = total.TotalXp
	}

	repaired := 0
	for _, truth := range ledger {
		if maintainedByEmployee[truth.EmployeeID] == truth.TotalXp {
			continue
		}
		if err := s.XpLogRepository.SetMaintainedTotal(ctx, truth.EmployeeID, truth.TotalXp); err != nil {
			return repaired, fmt.Errorf("failed to repair xp total for employee %s: %w", truth.EmployeeID, err)
		}
		repaired++
	}
	return repaired, nil
}
