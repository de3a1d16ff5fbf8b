package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

var activeStatuses = []domain.Status{domain.StatusActive, domain.StatusInactive}

// crud implements the read, delete and status operations that every
// resource service shares. Resource services embed it and add Create and
// Update with their own guards.
type crud[T any, P domain.Entity[T]] struct {
	repo     ports.Repository[T]
	empty    error
	resource string
	statuses []domain.Status
	logger   zerolog.Logger
	now      func() time.Time
}

func newCrud[T any, P domain.Entity[T]](repo ports.Repository[T], resource string, empty error, logger zerolog.Logger) crud[T, P] {
	return crud[T, P]{
		repo:     repo,
		empty:    empty,
		resource: resource,
		statuses: activeStatuses,
		logger:   logger,
		now:      time.Now,
	}
}

func (s crud[T, P]) List(ctx context.Context) ([]*T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err, "list")
	}
	if len(items) == 0 {
		return nil, s.empty
	}
	return items, nil
}

func (s crud[T, P]) Get(ctx context.Context, id string) (*T, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, "get")
	}
	return v, nil
}

func (s crud[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(err, "delete")
	}
	s.logger.Info().Str(s.resource+"_id", id).Msg(s.resource + " deleted")
	return nil
}

// ChangeStatus toggles ACTIVE and INACTIVE when status is empty. Resources
// with a review workflow require an explicit status.
func (s crud[T, P]) ChangeStatus(ctx context.Context, id string, status domain.Status) (*T, error) {
	toggles := slices.Equal(s.statuses, activeStatuses)
	if status == "" && !toggles {
		return nil, domain.Invalid("Status is required")
	}
	if status != "" && !slices.Contains(s.statuses, status) {
		return nil, domain.Invalid(fmt.Sprintf("Status must be one of [%s]", joinStatuses(s.statuses)))
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, "change status")
	}
	rec := P(v).Base()
	if status == "" {
		status = rec.Status.Toggled()
	}
	rec.Status = status
	if err := s.save(ctx, v); err != nil {
		return nil, err
	}
	s.logger.Info().Str(s.resource+"_id", id).Str("status", string(status)).Msg(s.resource + " status changed")
	return v, nil
}

// insert stamps a fresh record header on v and stores it.
func (s crud[T, P]) insert(ctx context.Context, v *T, status domain.Status) error {
	*P(v).Base() = domain.NewRecord(status, s.now())
	if err := s.repo.Create(ctx, v); err != nil {
		return s.fail(err, "create")
	}
	s.logger.Info().Str(s.resource+"_id", P(v).Base().ID).Msg(s.resource + " created")
	return nil
}

func (s crud[T, P]) save(ctx context.Context, v *T) error {
	P(v).Base().UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, v); err != nil {
		return s.fail(err, "update")
	}
	return nil
}

// fail logs errors that carry no client-facing kind and returns err as is.
func (s crud[T, P]) fail(err error, op string) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		s.logger.Error().Err(err).Str("op", op).Msg(s.resource + " store failure")
	}
	return err
}

// unique returns conflict when found is a record other than selfID. A
// NotFound lookup error means the value is free.
func unique[T any, P domain.Entity[T]](found P, err error, selfID string, conflict error) error {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if found.Base().ID == selfID {
		return nil
	}
	return conflict
}

func joinStatuses(ss []domain.Status) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
