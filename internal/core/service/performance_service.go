package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PerformanceService struct {
	crud[domain.Performance, *domain.Performance]
	performances ports.Repository[domain.Performance]
	employees    ports.Repository[domain.Employee]
	reviewers    ports.Repository[domain.Reviewer]
}

func NewPerformanceService(
	performances ports.Repository[domain.Performance],
	employees ports.Repository[domain.Employee],
	reviewers ports.Repository[domain.Reviewer],
	logger zerolog.Logger,
) *PerformanceService {
	return &PerformanceService{
		crud:         newCrud[domain.Performance](performances, "performance", domain.ErrPerformancesEmpty, logger),
		performances: performances,
		employees:    employees,
		reviewers:    reviewers,
	}
}

func (s *PerformanceService) Create(ctx context.Context, in ports.PerformanceInput) (*domain.Performance, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	p := &domain.Performance{}
	apply(p, in)
	if err := s.insert(ctx, p, domain.StatusActive); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PerformanceService) Update(ctx context.Context, id string, in ports.PerformanceInput) (*domain.Performance, error) {
	p, err := s.performances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	apply(p, in)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("performance_id", id).Msg("performance updated")
	return p, nil
}

func (s *PerformanceService) check(ctx context.Context, in ports.PerformanceInput) error {
	if _, err := s.employees.FindByID(ctx, in.EmployeeID); err != nil {
		return err
	}
	_, err := s.reviewers.FindByID(ctx, in.ReviewerID)
	return err
}

func apply(p *domain.Performance, in ports.PerformanceInput) {
	p.EmployeeID = in.EmployeeID
	p.ReviewerID = in.ReviewerID
	p.Score = in.Score
	p.Comments = in.Comments
	p.Date = in.Date.UTC()
}
