package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type ReviewerService struct {
	crud[domain.Reviewer, *domain.Reviewer]
	reviewers ports.ReviewerRepository
	employees ports.Repository[domain.Employee]
	positions ports.Repository[domain.Position]
}

func NewReviewerService(
	reviewers ports.ReviewerRepository,
	employees ports.Repository[domain.Employee],
	positions ports.Repository[domain.Position],
	logger zerolog.Logger,
) *ReviewerService {
	return &ReviewerService{
		crud:      newCrud[domain.Reviewer](reviewers, "reviewer", domain.ErrReviewersEmpty, logger),
		reviewers: reviewers,
		employees: employees,
		positions: positions,
	}
}

func (s *ReviewerService) Create(ctx context.Context, in ports.ReviewerInput) (*domain.Reviewer, error) {
	deptID, err := s.department(ctx, in, "")
	if err != nil {
		return nil, err
	}
	r := &domain.Reviewer{EmployeeID: in.EmployeeID, DepartmentID: deptID}
	if err := s.insert(ctx, r, domain.StatusActive); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewerService) Update(ctx context.Context, id string, in ports.ReviewerInput) (*domain.Reviewer, error) {
	r, err := s.reviewers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	deptID, err := s.department(ctx, in, id)
	if err != nil {
		return nil, err
	}
	r.EmployeeID, r.DepartmentID = in.EmployeeID, deptID
	if err := s.save(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info().Str("reviewer_id", id).Msg("reviewer updated")
	return r, nil
}

// department resolves the reviewer's department through the employee's
// position and makes sure no other reviewer already covers it.
func (s *ReviewerService) department(ctx context.Context, in ports.ReviewerInput, selfID string) (string, error) {
	e, err := s.employees.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return "", err
	}
	p, err := s.positions.FindByID(ctx, e.PositionID)
	if err != nil {
		return "", err
	}
	if in.DepartmentID != "" && in.DepartmentID != p.DepartmentID {
		return "", domain.ErrReviewerDepartment
	}
	found, err := s.reviewers.FindByDepartment(ctx, p.DepartmentID)
	if err := unique(found, err, selfID, domain.ErrDepartmentReviewed); err != nil {
		return "", err
	}
	return p.DepartmentID, nil
}
