package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/echal/gembira-sub001/internal/domain/gamification"
	"github.com/echal/gembira-sub001/internal/service/scoring"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	calculator          *scoring.Calculator
	gamificationService gamification.GamificationService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	calculator *scoring.Calculator,
	gamificationService gamification.GamificationService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		calculator:           calculator,
		gamificationService:  gamificationService,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	loc := a.calculator.Location()
	nowLocal := nowUTC.In(loc)
	dateLocal := nowLocal.Format("2006-01-02")

	hasCheckedIn, err := a.AttendanceRepository.HasCheckedIn(ctx, employeeID, dateLocal)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if hasCheckedIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	data := attendance.Attendance{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		// Date is the civil working day, not a timestamp
		Date:    time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc),
		ClockIn: &nowUTC,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	resp := a.toResponse(created)

	// XP is credited only for qualifying check-ins; a replay of this call is
	// absorbed by the ledger's idempotency key. The event is already durable
	// at this point, so an append failure fails the award alone, never the
	// check-in.
	awarded, err := a.gamificationService.AwardCheckInXp(ctx, employeeID, created.ID, nowUTC, created.Date)
	if err != nil {
		slog.Error("Failed to award check-in XP", "employee_id", employeeID, "attendance_id", created.ID, "error", err)
	} else if awarded != nil {
		resp.XpAwarded = &awarded.XpDelta
	}

	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	dateLocal := nowUTC.In(a.calculator.Location()).Format("2006-01-02")

	event, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dateLocal)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if event == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if event.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	event.ClockOut = &nowUTC
	if err := a.AttendanceRepository.Update(ctx, *event); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return a.toResponse(*event), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	adminFilter := attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	return a.ListAttendance(ctx, adminFilter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	events, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, a.toResponse(event))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

func (a *AttendanceServiceImpl) toResponse(event attendance.Attendance) attendance.AttendanceResponse {
	score, qualifies := a.calculator.Score(event)
	resp := attendance.AttendanceResponse{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		UnitName:     event.UnitName,
		Date:         event.Date.Format("2006-01-02"),
		ClockInTime:  timePtrToString(event.ClockIn),
		ClockOutTime: timePtrToString(event.ClockOut),
		DailyScore:   score,
		Qualifies:    qualifies,
	}
	if event.EmployeeName != nil {
		resp.EmployeeName = *event.EmployeeName
	}
	return resp
}
