package ports

import (
	"context"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// TokenVerifier returns the identity id embedded in a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type TokenIssuer interface {
	TokenVerifier
	Issue(identityID string) (string, error)
}

// SignInLimiter counts failed sign-in attempts per email.
type SignInLimiter interface {
	// Check returns domain.ErrTooManyAttempts once the email is locked out.
	Check(ctx context.Context, email string) error
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type SignInInput struct {
	Email    string
	Password string
}

type SignUpInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

type AuthService interface {
	SignIn(ctx context.Context, in SignInInput) (string, *domain.User, error)
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated user.
func WithIdentity(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, identityKey{}, u)
}

// IdentityFrom returns the authenticated user stored by WithIdentity.
func IdentityFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(identityKey{}).(*domain.User)
	return u, ok && u != nil
}
