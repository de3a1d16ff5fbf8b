package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type EmployeeService struct {
	crud[domain.Employee, *domain.Employee]
	employees ports.Repository[domain.Employee]
	positions ports.Repository[domain.Position]
}

func NewEmployeeService(employees ports.Repository[domain.Employee], positions ports.Repository[domain.Position], logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		crud:      newCrud[domain.Employee](employees, "employee", domain.ErrEmployeesEmpty, logger),
		employees: employees,
		positions: positions,
	}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if _, err := s.positions.FindByID(ctx, in.PositionID); err != nil {
		return nil, err
	}
	e := &domain.Employee{Name: in.Name, Lastname: in.Lastname, Salary: in.Salary, PositionID: in.PositionID}
	if err := s.insert(ctx, e, domain.StatusActive); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.positions.FindByID(ctx, in.PositionID); err != nil {
		return nil, err
	}
	e.Name, e.Lastname, e.Salary, e.PositionID = in.Name, in.Lastname, in.Salary, in.PositionID
	if err := s.save(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee updated")
	return e, nil
}
