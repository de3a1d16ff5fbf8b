package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/api/metrics"
	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// Context keys set by the auth stages.
const (
	credentialKey = "credential"
	identityIDKey = "identity_id"
	identityKey   = "identity"
)

// IdentityFinder loads the identity a verified token points at.
type IdentityFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// ExtractCredential reads the bearer token from the Authorization header.
func ExtractCredential() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				return reject("no_token", domain.ErrNoCredential)
			}
			c.Set(credentialKey, token)
			return next(c)
		}
	}
}

// VerifyToken checks the extracted credential and stores its identity id.
func VerifyToken(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(credentialKey).(string)
			if token == "" {
				return reject("no_token", domain.ErrNoCredential)
			}
			id, err := verifier.Verify(token)
			if err != nil {
				return reject("invalid_token", domain.ErrTokenInvalid)
			}
			c.Set(identityIDKey, id)
			return next(c)
		}
	}
}

// ResolveIdentity loads the identity once per request and caches it on both
// the echo context and the request context.
func ResolveIdentity(users IdentityFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(identityIDKey).(string)
			if id == "" {
				return reject("invalid_token", domain.ErrTokenInvalid)
			}
			req := c.Request()
			user, err := users.FindByID(req.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return reject("identity_not_found", domain.ErrUserNotFound)
				}
				return err
			}
			if user.Status != domain.StatusActive {
				return reject("inactive", domain.ErrUserInactive)
			}
			c.Set(identityKey, user)
			c.SetRequest(req.WithContext(ports.WithIdentity(req.Context(), user)))
			return next(c)
		}
	}
}

// Authorize admits identities whose role satisfies required. It reads the
// identity cached by ResolveIdentity.
func Authorize(required domain.Role) echo.MiddlewareFunc {
	denied := domain.Forbidden("Require " + required.Title() + " Role")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.Role.Satisfies(required) {
				return reject("role", denied)
			}
			return next(c)
		}
	}
}

// Authenticate composes ExtractCredential, VerifyToken and ResolveIdentity.
func Authenticate(verifier ports.TokenVerifier, users IdentityFinder) echo.MiddlewareFunc {
	return Chain(ExtractCredential(), VerifyToken(verifier), ResolveIdentity(users))
}

// Chain returns a middleware that runs mws in order.
func Chain(mws ...echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// CurrentUser returns the identity resolved for this request.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(identityKey).(*domain.User)
	return u, ok && u != nil
}

func reject(reason string, err error) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return err
}
