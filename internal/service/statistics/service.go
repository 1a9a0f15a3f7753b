package statistics

import (
	"context"
	"errors"
	"fmt"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/domain/statistics"
	"github.com/echal/gembira-sub001/internal/pkg/calendar"
	"github.com/echal/gembira-sub001/internal/pkg/validator"
	"github.com/echal/gembira-sub001/internal/service/scoring"
	"github.com/shopspring/decimal"
)

type StatisticsServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendar   *calendar.Provider
	calculator *scoring.Calculator
}

func NewStatisticsService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendarProvider *calendar.Provider,
	calculator *scoring.Calculator,
) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		calendar:             calendarProvider,
		calculator:           calculator,
	}
}

// GetAttendancePercentage implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetAttendancePercentage(ctx context.Context, employeeID string, year int, month int) (statistics.PercentageResult, error) {
	if err := validateMonth(year, month); err != nil {
		return statistics.PercentageResult{}, err
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return statistics.PercentageResult{}, err
	}

	workingDays, err := s.calendar.WorkingDays(ctx, year, month)
	if err != nil {
		return statistics.PercentageResult{}, fmt.Errorf("failed to compute working days: %w", err)
	}

	return s.buildPercentage(ctx, employeeID, year, month, workingDays)
}

// GetAttendancePercentageSimple implements statistics.StatisticsService.
// Identical qualification rule, holiday lookup skipped.
func (s *StatisticsServiceImpl) GetAttendancePercentageSimple(ctx context.Context, employeeID string, year int, month int) (statistics.PercentageResult, error) {
	if err := validateMonth(year, month); err != nil {
		return statistics.PercentageResult{}, err
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return statistics.PercentageResult{}, err
	}

	return s.buildPercentage(ctx, employeeID, year, month, s.calendar.WorkingDaysSimple(year, month))
}

// GetMonthlyOverview implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetMonthlyOverview(ctx context.Context, employeeID string, period string) (statistics.MonthlyOverview, error) {
	parsed, ok := validator.IsValidPeriod(period)
	if !ok {
		return statistics.MonthlyOverview{}, attendance.ErrInvalidPeriod
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return statistics.MonthlyOverview{}, err
	}
	year, month := parsed.Year(), int(parsed.Month())

	workingDays, err := s.calendar.WorkingDays(ctx, year, month)
	if err != nil {
		return statistics.MonthlyOverview{}, fmt.Errorf("failed to compute working days: %w", err)
	}

	events, err := s.AttendanceRepository.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return statistics.MonthlyOverview{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	present, late := 0, 0
	for _, ev := range events {
		if s.calculator.Qualifies(ev) {
			present++
		} else if s.calculator.IsPresentLate(ev) {
			late++
		}
	}

	absent := workingDays - present - late
	if absent < 0 {
		absent = 0
	}

	return statistics.MonthlyOverview{
		EmployeeID:  employeeID,
		Period:      period,
		PresentDays: present,
		LateDays:    late,
		AbsentDays:  absent,
		WorkingDays: workingDays,
	}, nil
}

// buildPercentage is the one place attendance percentage is computed.
func (s *StatisticsServiceImpl) buildPercentage(ctx context.Context, employeeID string, year int, month int, workingDays int) (statistics.PercentageResult, error) {
	events, err := s.AttendanceRepository.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return statistics.PercentageResult{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	attended, late := 0, 0
	for _, ev := range events {
		// same qualification rule as the ranking aggregator
		if s.calculator.Qualifies(ev) {
			attended++
		} else if s.calculator.IsPresentLate(ev) {
			late++
		}
	}

	result := statistics.PercentageResult{
		EmployeeID:          employeeID,
		Year:                year,
		Month:               month,
		AttendedDays:        attended,
		PresentLateDays:     late,
		RequiredWorkingDays: workingDays,
		Percentage:          decimal.Zero,
	}

	// a fully-holiday month has nothing to divide by; percentage stays zero
	if workingDays > 0 {
		result.Percentage = decimal.NewFromInt(int64(attended)).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(int64(workingDays)), 2)
	}
	return result, nil
}

func (s *StatisticsServiceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	if validator.IsEmpty(employeeID) {
		return employee.ErrEmployeeNotFound
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

func validateMonth(year int, month int) error {
	if year < 2000 || year > 2200 || month < 1 || month > 12 {
		return attendance.ErrInvalidPeriod
	}
	return nil
}
