package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type DepartmentService struct {
	crud[domain.Department, *domain.Department]
	departments ports.DepartmentRepository
}

func NewDepartmentService(departments ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		crud:        newCrud[domain.Department](departments, "department", domain.ErrDepartmentsEmpty, logger),
		departments: departments,
	}
}

func (s *DepartmentService) Create(ctx context.Context, in ports.DepartmentInput) (*domain.Department, error) {
	if err := s.checkUnique(ctx, in, ""); err != nil {
		return nil, err
	}
	d := &domain.Department{Name: in.Name, Code: in.Code}
	if err := s.insert(ctx, d, domain.StatusActive); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Update(ctx context.Context, id string, in ports.DepartmentInput) (*domain.Department, error) {
	d, err := s.departments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in, id); err != nil {
		return nil, err
	}
	d.Name, d.Code = in.Name, in.Code
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info().Str("department_id", id).Msg("department updated")
	return d, nil
}

func (s *DepartmentService) checkUnique(ctx context.Context, in ports.DepartmentInput, selfID string) error {
	found, err := s.departments.FindByName(ctx, in.Name)
	if err := unique(found, err, selfID, domain.ErrDepartmentNameTaken); err != nil {
		return err
	}
	found, err = s.departments.FindByCode(ctx, in.Code)
	return unique(found, err, selfID, domain.ErrDepartmentCodeTaken)
}
