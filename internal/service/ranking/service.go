package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/ranking"
	"github.com/echal/gembira-sub001/internal/pkg/validator"
	"github.com/echal/gembira-sub001/internal/service/scoring"
	"github.com/shopspring/decimal"
)

type RankingServiceImpl struct {
	attendance.AttendanceRepository
	calculator *scoring.Calculator
}

func NewRankingService(attendanceRepo attendance.AttendanceRepository, calculator *scoring.Calculator) ranking.RankingService {
	return &RankingServiceImpl{
		AttendanceRepository: attendanceRepo,
		calculator:           calculator,
	}
}

// GetDailyRanking implements ranking.RankingService.
func (r *RankingServiceImpl) GetDailyRanking(ctx context.Context, date string) (ranking.DailyRankingResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return ranking.DailyRankingResponse{}, attendance.ErrInvalidDate
	}

	events, err := r.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return ranking.DailyRankingResponse{}, fmt.Errorf("failed to list attendances for %s: %w", date, err)
	}

	entries, skipped := buildDailyRanking(events, r.calculator, date)
	return ranking.DailyRankingResponse{
		Date:           date,
		Entries:        entries,
		SkippedRecords: skipped,
	}, nil
}

// GetMonthlyRanking implements ranking.RankingService.
func (r *RankingServiceImpl) GetMonthlyRanking(ctx context.Context, period string) (ranking.MonthlyRankingResponse, error) {
	parsed, ok := validator.IsValidPeriod(period)
	if !ok {
		return ranking.MonthlyRankingResponse{}, attendance.ErrInvalidPeriod
	}

	events, err := r.AttendanceRepository.ListByMonth(ctx, parsed.Year(), int(parsed.Month()))
	if err != nil {
		return ranking.MonthlyRankingResponse{}, fmt.Errorf("failed to list attendances for %s: %w", period, err)
	}

	entries, skipped := buildMonthlyRanking(events, r.calculator, period)
	return ranking.MonthlyRankingResponse{
		Period:         period,
		Entries:        entries,
		SkippedRecords: skipped,
	}, nil
}

// GetUnitRanking implements ranking.RankingService.
func (r *RankingServiceImpl) GetUnitRanking(ctx context.Context, date string) (ranking.UnitRankingResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return ranking.UnitRankingResponse{}, attendance.ErrInvalidDate
	}

	events, err := r.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return ranking.UnitRankingResponse{}, fmt.Errorf("failed to list attendances for %s: %w", date, err)
	}

	entries, skipped := buildUnitRanking(events, r.calculator, date)
	return ranking.UnitRankingResponse{
		Date:           date,
		Entries:        entries,
		SkippedRecords: skipped,
	}, nil
}

// isCorrupt flags events the aggregation skips instead of failing the whole
// scope: missing identity or a check-out earlier than its check-in.
func isCorrupt(ev attendance.Attendance) bool {
	if ev.EmployeeID == "" {
		return true
	}
	if ev.ClockIn != nil && ev.ClockOut != nil && ev.ClockOut.Before(*ev.ClockIn) {
		return true
	}
	return false
}

type scoredEvent struct {
	event attendance.Attendance
	score int
}

// buildDailyRanking scores and orders one day's events. Sort: score
// descending, then earlier check-in, then employee id for determinism.
// Ranks are competition style: entries tied on (score, check-in time) share
// a rank and the next distinct entry resumes at its 1-based position.
func buildDailyRanking(events []attendance.Attendance, calc *scoring.Calculator, date string) ([]ranking.DailyRankingEntry, int) {
	scored := make([]scoredEvent, 0, len(events))
	skipped := 0
	for _, ev := range events {
		if isCorrupt(ev) {
			skipped++
			continue
		}
		score, qualifies := calc.Score(ev)
		if !qualifies {
			continue
		}
		scored = append(scored, scoredEvent{event: ev, score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if !scored[i].event.ClockIn.Equal(*scored[j].event.ClockIn) {
			return scored[i].event.ClockIn.Before(*scored[j].event.ClockIn)
		}
		return scored[i].event.EmployeeID < scored[j].event.EmployeeID
	})

	entries := make([]ranking.DailyRankingEntry, 0, len(scored))
	rank := 0
	for i, s := range scored {
		if i == 0 || scored[i-1].score != s.score || !scored[i-1].event.ClockIn.Equal(*s.event.ClockIn) {
			rank = i + 1
		}

		var name string
		if s.event.EmployeeName != nil {
			name = *s.event.EmployeeName
		}
		entries = append(entries, ranking.DailyRankingEntry{
			EmployeeID:   s.event.EmployeeID,
			EmployeeName: name,
			UnitName:     s.event.UnitName,
			Date:         date,
			ClockInTime:  s.event.ClockIn.In(calc.Location()).Format("15:04:05"),
			DailyScore:   s.score,
			Rank:         rank,
			Badge:        ranking.BadgeForRank(rank),
		})
	}
	return entries, skipped
}

type monthlyAccumulator struct {
	employeeID   string
	employeeName string
	totalScore   int
	days         int
}

// buildMonthlyRanking sums qualifying daily scores per employee. Sort: total
// descending, then average descending, then employee id. Ties on
// (total, average) share a competition rank.
func buildMonthlyRanking(events []attendance.Attendance, calc *scoring.Calculator, period string) ([]ranking.MonthlyRankingEntry, int) {
	byEmployee := make(map[string]*monthlyAccumulator)
	skipped := 0
	for _, ev := range events {
		if isCorrupt(ev) {
			skipped++
			continue
		}
		score, qualifies := calc.Score(ev)
		if !qualifies {
			continue
		}
		acc, found := byEmployee[ev.EmployeeID]
		if !found {
			acc = &monthlyAccumulator{employeeID: ev.EmployeeID}
			if ev.EmployeeName != nil {
				acc.employeeName = *ev.EmployeeName
			}
			byEmployee[ev.EmployeeID] = acc
		}
		acc.totalScore += score
		acc.days++
	}

	accs := make([]*monthlyAccumulator, 0, len(byEmployee))
	for _, acc := range byEmployee {
		accs = append(accs, acc)
	}

	average := func(acc *monthlyAccumulator) decimal.Decimal {
		return decimal.NewFromInt(int64(acc.totalScore)).
			DivRound(decimal.NewFromInt(int64(acc.days)), 2)
	}

	sort.Slice(accs, func(i, j int) bool {
		if accs[i].totalScore != accs[j].totalScore {
			return accs[i].totalScore > accs[j].totalScore
		}
		avgI, avgJ := average(accs[i]), average(accs[j])
		if !avgI.Equal(avgJ) {
			return avgI.GreaterThan(avgJ)
		}
		return accs[i].employeeID < accs[j].employeeID
	})

	entries := make([]ranking.MonthlyRankingEntry, 0, len(accs))
	rank := 0
	for i, acc := range accs {
		if i == 0 || accs[i-1].totalScore != acc.totalScore || !average(accs[i-1]).Equal(average(acc)) {
			rank = i + 1
		}
		entries = append(entries, ranking.MonthlyRankingEntry{
			EmployeeID:     acc.employeeID,
			EmployeeName:   acc.employeeName,
			Period:         period,
			TotalScore:     acc.totalScore,
			AverageScore:   average(acc),
			QualifyingDays: acc.days,
			Rank:           rank,
			Badge:          ranking.BadgeForRank(rank),
		})
	}
	return entries, skipped
}

type unitAccumulator struct {
	unitID     string
	unitName   string
	totalScore int
	members    int
}

// buildUnitRanking averages qualifying scores per organizational unit. Units
// with zero qualifying members never appear, even when they have absent or
// late members on the date.
func buildUnitRanking(events []attendance.Attendance, calc *scoring.Calculator, date string) ([]ranking.UnitRankingEntry, int) {
	byUnit := make(map[string]*unitAccumulator)
	skipped := 0
	for _, ev := range events {
		if isCorrupt(ev) {
			skipped++
			continue
		}
		score, qualifies := calc.Score(ev)
		if !qualifies {
			continue
		}
		if ev.UnitID == nil {
			skipped++
			continue
		}
		acc, found := byUnit[*ev.UnitID]
		if !found {
			acc = &unitAccumulator{unitID: *ev.UnitID}
			if ev.UnitName != nil {
				acc.unitName = *ev.UnitName
			}
			byUnit[*ev.UnitID] = acc
		}
		acc.totalScore += score
		acc.members++
	}

	accs := make([]*unitAccumulator, 0, len(byUnit))
	for _, acc := range byUnit {
		accs = append(accs, acc)
	}

	average := func(acc *unitAccumulator) decimal.Decimal {
		return decimal.NewFromInt(int64(acc.totalScore)).
			DivRound(decimal.NewFromInt(int64(acc.members)), 2)
	}

	sort.Slice(accs, func(i, j int) bool {
		avgI, avgJ := average(accs[i]), average(accs[j])
		if !avgI.Equal(avgJ) {
			return avgI.GreaterThan(avgJ)
		}
		return accs[i].unitID < accs[j].unitID
	})

	entries := make([]ranking.UnitRankingEntry, 0, len(accs))
	rank := 0
	for i, acc := range accs {
		if i == 0 || !average(accs[i-1]).Equal(average(acc)) {
			rank = i + 1
		}
		entries = append(entries, ranking.UnitRankingEntry{
			UnitID:       acc.unitID,
			UnitName:     acc.unitName,
			Date:         date,
			AverageScore: average(acc),
			MemberCount:  acc.members,
			Rank:         rank,
		})
	}
	return entries, skipped
}
