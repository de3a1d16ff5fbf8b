package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type stubVerifier map[string]string

func (v stubVerifier) Verify(token string) (string, error) {
	id, ok := v[token]
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return id, nil
}

type stubFinder struct {
	users   map[string]*domain.User
	lookups int
}

func (f *stubFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	f.lookups++
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func newStubFinder() *stubFinder {
	return &stubFinder{users: map[string]*domain.User{
		"admin": {Record: domain.Record{ID: "admin", Status: domain.StatusActive}, Role: domain.RoleAdmin},
		"mod":   {Record: domain.Record{ID: "mod", Status: domain.StatusActive}, Role: domain.RoleModerator},
		"user":  {Record: domain.Record{ID: "user", Status: domain.StatusActive}, Role: domain.RoleUser},
		"off":   {Record: domain.Record{ID: "off", Status: domain.StatusInactive}, Role: domain.RoleAdmin},
	}}
}

var verifier = stubVerifier{
	"t-admin": "admin",
	"t-mod":   "mod",
	"t-user":  "user",
	"t-off":   "off",
	"t-ghost": "ghost",
}

func run(t *testing.T, header string, mw echo.MiddlewareFunc) (bool, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return called, c, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	finder := newStubFinder()
	called, c, err := run(t, "Bearer t-admin", Authenticate(verifier, finder))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	u, ok := CurrentUser(c)
	if !ok || u.ID != "admin" {
		t.Fatalf("identity not cached on context: %+v", u)
	}
	if ctxUser, ok := ports.IdentityFrom(c.Request().Context()); !ok || ctxUser.ID != "admin" {
		t.Fatalf("identity not stored on request context")
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   error
		kind   error
	}{
		{"missing header", "", domain.ErrNoCredential, domain.ErrForbidden},
		{"empty bearer", "Bearer ", domain.ErrNoCredential, domain.ErrForbidden},
		{"wrong scheme", "Basic t-admin", domain.ErrNoCredential, domain.ErrForbidden},
		{"bad token", "Bearer nope", domain.ErrTokenInvalid, domain.ErrUnauthorized},
		{"unknown identity", "Bearer t-ghost", domain.ErrUserNotFound, domain.ErrNotFound},
		{"inactive identity", "Bearer t-off", domain.ErrUserInactive, domain.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called, _, err := run(t, tc.header, Authenticate(verifier, newStubFinder()))
			if called {
				t.Fatalf("next must not run")
			}
			if !errors.Is(err, tc.want) || !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthorize_RoleHierarchy(t *testing.T) {
	cases := []struct {
		token    string
		required domain.Role
		allowed  bool
	}{
		{"t-admin", domain.RoleAdmin, true},
		{"t-admin", domain.RoleModerator, true},
		{"t-mod", domain.RoleModerator, true},
		{"t-mod", domain.RoleAdmin, false},
		{"t-user", domain.RoleModerator, false},
		{"t-user", domain.RoleUser, true},
	}
	for _, tc := range cases {
		t.Run(tc.token+"/"+string(tc.required), func(t *testing.T) {
			finder := newStubFinder()
			mw := Chain(Authenticate(verifier, finder), Authorize(tc.required))
			called, _, err := run(t, "Bearer "+tc.token, mw)
			if called != tc.allowed {
				t.Fatalf("called = %v, want %v (err %v)", called, tc.allowed, err)
			}
			if !tc.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
			if finder.lookups != 1 {
				t.Fatalf("expected a single identity lookup, got %d", finder.lookups)
			}
		})
	}
}

func TestAuthorize_Message(t *testing.T) {
	_, _, err := run(t, "Bearer t-mod", Chain(Authenticate(verifier, newStubFinder()), Authorize(domain.RoleAdmin)))
	if err == nil || err.Error() != "Require Admin Role" {
		t.Fatalf("unexpected rejection: %v", err)
	}
}

func TestAuthorize_WithoutIdentity(t *testing.T) {
	called, _, err := run(t, "", Authorize(domain.RoleUser))
	if called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden without resolved identity, got %v", err)
	}
}
