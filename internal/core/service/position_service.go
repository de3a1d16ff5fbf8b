package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PositionService struct {
	crud[domain.Position, *domain.Position]
	positions   ports.PositionRepository
	departments ports.Repository[domain.Department]
}

func NewPositionService(positions ports.PositionRepository, departments ports.Repository[domain.Department], logger zerolog.Logger) *PositionService {
	return &PositionService{
		crud:        newCrud[domain.Position](positions, "position", domain.ErrPositionsEmpty, logger),
		positions:   positions,
		departments: departments,
	}
}

func (s *PositionService) Create(ctx context.Context, in ports.PositionInput) (*domain.Position, error) {
	if err := s.check(ctx, in, ""); err != nil {
		return nil, err
	}
	p := &domain.Position{Name: in.Name, Description: in.Description, DepartmentID: in.DepartmentID}
	if err := s.insert(ctx, p, domain.StatusActive); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PositionService) Update(ctx context.Context, id string, in ports.PositionInput) (*domain.Position, error) {
	p, err := s.positions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in, id); err != nil {
		return nil, err
	}
	p.Name, p.Description, p.DepartmentID = in.Name, in.Description, in.DepartmentID
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("position_id", id).Msg("position updated")
	return p, nil
}

func (s *PositionService) check(ctx context.Context, in ports.PositionInput, selfID string) error {
	if _, err := s.departments.FindByID(ctx, in.DepartmentID); err != nil {
		return err
	}
	found, err := s.positions.FindByName(ctx, in.Name)
	return unique(found, err, selfID, domain.ErrPositionNameTaken)
}
