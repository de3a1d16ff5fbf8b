package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// SeedIdentity is an account that must exist once the service starts.
type SeedIdentity struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Role     domain.Role
}

// EnsureIdentities creates every seed identity whose email is not yet taken.
// Existing accounts are left untouched.
func EnsureIdentities(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger, seeds ...SeedIdentity) error {
	svc := NewUserService(users, hasher, logger)
	for _, seed := range seeds {
		if seed.Email == "" {
			continue
		}
		_, err := users.FindByEmail(ctx, seed.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if _, err := svc.Create(ctx, ports.UserInput{
			Name:     seed.Name,
			Lastname: seed.Lastname,
			Email:    seed.Email,
			Password: seed.Password,
			Role:     seed.Role,
		}); err != nil {
			return err
		}
		logger.Info().Str("email", seed.Email).Str("role", string(seed.Role)).Msg("seed identity created")
	}
	return nil
}
