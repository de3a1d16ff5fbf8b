package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

var errRoleAboveCaller = domain.Forbidden("Cannot assign a role above your own")

type UserService struct {
	crud[domain.User, *domain.User]
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{
		crud:   newCrud[domain.User](users, "user", domain.ErrUsersEmpty, logger),
		users:  users,
		hasher: hasher,
	}
}

// Create stores a new user with a hashed password. The caller found in ctx,
// if any, may not grant a role ranked above its own.
func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	if err := s.checkRole(ctx, in.Role); err != nil {
		return nil, err
	}
	found, err := s.users.FindByEmail(ctx, in.Email)
	if err := unique(found, err, "", domain.ErrEmailTaken); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, s.fail(err, "hash password")
	}
	u := &domain.User{
		Name:         in.Name,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.insert(ctx, u, domain.StatusActive); err != nil {
		return nil, err
	}
	return u, nil
}

// Update replaces profile fields. A blank password keeps the stored hash and
// a blank role keeps the stored role.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserInput) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, u.Role); err != nil {
		return nil, err
	}
	if in.Role != "" {
		if err := s.checkRole(ctx, in.Role); err != nil {
			return nil, err
		}
		u.Role = in.Role
	}
	found, err := s.users.FindByEmail(ctx, in.Email)
	if err := unique(found, err, id, domain.ErrEmailTaken); err != nil {
		return nil, err
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, s.fail(err, "hash password")
		}
		u.PasswordHash = hash
	}
	u.Name, u.Lastname, u.Email = in.Name, in.Lastname, in.Email
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return u, nil
}

func (s *UserService) checkRole(ctx context.Context, role domain.Role) error {
	caller, ok := ports.IdentityFrom(ctx)
	if !ok {
		return nil
	}
	if !caller.Role.Satisfies(role) {
		return errRoleAboveCaller
	}
	return nil
}
