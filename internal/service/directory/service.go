package directory

import (
	"context"
	"fmt"

	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/domain/unit"
)

// DirectoryService is the read-only view of the employee directory. The
// directory itself is owned by an external HR system; nothing here writes.
type DirectoryService interface {
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
	ListUnits(ctx context.Context) ([]unit.UnitResponse, error)
}

type directoryServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	unitRepo     unit.UnitRepository
}

func NewDirectoryService(employeeRepo employee.EmployeeRepository, unitRepo unit.UnitRepository) DirectoryService {
	return &directoryServiceImpl{
		employeeRepo: employeeRepo,
		unitRepo:     unitRepo,
	}
}

func (s *directoryServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *directoryServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *directoryServiceImpl) ListUnits(ctx context.Context) ([]unit.UnitResponse, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	responses := make([]unit.UnitResponse, 0, len(units))
	for _, un := range units {
		responses = append(responses, unit.ToResponse(un))
	}
	return responses, nil
}
