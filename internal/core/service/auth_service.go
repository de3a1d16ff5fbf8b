package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// AuthService implements sign-in, self sign-up and identity lookup.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	limiter ports.SignInLimiter
	signup  *UserService
	logger  zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	limiter ports.SignInLimiter,
	logger zerolog.Logger,
) *AuthService {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		signup:  NewUserService(users, hasher, logger),
		logger:  logger,
	}
}

func (s *AuthService) SignIn(ctx context.Context, in ports.SignInInput) (string, *domain.User, error) {
	if err := s.limiter.Check(ctx, in.Email); err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			return "", nil, err
		}
		s.logger.Warn().Err(err).Msg("sign-in limiter unavailable, proceeding")
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if s.hasher.Compare(user.PasswordHash, in.Password) != nil {
		if err := s.limiter.Fail(ctx, in.Email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record sign-in failure")
		}
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.StatusActive {
		return "", nil, domain.ErrUserInactive
	}
	if err := s.limiter.Reset(ctx, in.Email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset sign-in failures")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return "", nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return token, user, nil
}

// SignUp registers a USER account. Self-registration never grants a higher role.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	return s.signup.Create(ctx, ports.UserInput{
		Name:     in.Name,
		Lastname: in.Lastname,
		Email:    in.Email,
		Password: in.Password,
		Role:     domain.RoleUser,
	})
}

func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	u, ok := ports.IdentityFrom(ctx)
	if !ok {
		return nil, domain.ErrNoCredential
	}
	return u, nil
}
