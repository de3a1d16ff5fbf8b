package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// AbsenceService manages leaves or licenses. Both carry an employee, a date
// range and a PENDING/APPROVED/REJECTED review status.
type AbsenceService[T any, P domain.AbsenceEntity[T]] struct {
	crud[T, P]
	employees ports.Repository[domain.Employee]
}

func NewLeaveService(leaves ports.Repository[domain.Leave], employees ports.Repository[domain.Employee], logger zerolog.Logger) *AbsenceService[domain.Leave, *domain.Leave] {
	return newAbsenceService[domain.Leave, *domain.Leave](leaves, employees, "leave", domain.ErrLeavesEmpty, logger)
}

func NewLicenseService(licenses ports.Repository[domain.License], employees ports.Repository[domain.Employee], logger zerolog.Logger) *AbsenceService[domain.License, *domain.License] {
	return newAbsenceService[domain.License, *domain.License](licenses, employees, "license", domain.ErrLicensesEmpty, logger)
}

func newAbsenceService[T any, P domain.AbsenceEntity[T]](repo ports.Repository[T], employees ports.Repository[domain.Employee], resource string, empty error, logger zerolog.Logger) *AbsenceService[T, P] {
	c := newCrud[T, P](repo, resource, empty, logger)
	c.statuses = domain.ReviewStatuses
	return &AbsenceService[T, P]{crud: c, employees: employees}
}

func (s *AbsenceService[T, P]) Create(ctx context.Context, in ports.AbsenceInput) (*T, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	v := new(T)
	fill(P(v).Details(), in)
	if err := s.insert(ctx, v, domain.StatusPending); err != nil {
		return nil, err
	}
	return v, nil
}

// Update replaces the absence fields. The review status only changes through
// ChangeStatus.
func (s *AbsenceService[T, P]) Update(ctx context.Context, id string, in ports.AbsenceInput) (*T, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	fill(P(v).Details(), in)
	if err := s.save(ctx, v); err != nil {
		return nil, err
	}
	s.logger.Info().Str(s.resource+"_id", id).Msg(s.resource + " updated")
	return v, nil
}

func (s *AbsenceService[T, P]) check(ctx context.Context, in ports.AbsenceInput) error {
	if !in.EndDate.After(in.StartDate) {
		return domain.Invalid("End Date must be later than Start Date")
	}
	_, err := s.employees.FindByID(ctx, in.EmployeeID)
	return err
}

func fill(a *domain.Absence, in ports.AbsenceInput) {
	a.EmployeeID = in.EmployeeID
	a.StartDate = in.StartDate.UTC()
	a.EndDate = in.EndDate.UTC()
	a.Reason = in.Reason
}
