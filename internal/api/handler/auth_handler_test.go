package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type stubAuthService struct {
	signInFn func(ctx context.Context, in ports.SignInInput) (string, *domain.User, error)
	signUpFn func(ctx context.Context, in ports.SignUpInput) (*domain.User, error)
	meFn     func(ctx context.Context) (*domain.User, error)
}

func (s *stubAuthService) SignIn(ctx context.Context, in ports.SignInInput) (string, *domain.User, error) {
	return s.signInFn(ctx, in)
}

func (s *stubAuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubAuthService) Me(ctx context.Context) (*domain.User, error) {
	return s.meFn(ctx)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, in ports.SignInInput) (string, *domain.User, error) {
			if in.Email != "Admin@example.com" || in.Password != "Admin12345" {
				t.Fatalf("unexpected args: %+v", in)
			}
			return "tok", &domain.User{Email: in.Email, Role: domain.RoleAdmin, PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/auth/signin", `{"email":" Admin@example.com ","password":"Admin12345"}`)
	if err := handler.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token in response, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password hash must not be serialised: %+v", user)
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Fatalf("password hash must not be serialised: %+v", user)
	}
}

func TestAuthHandler_SignIn_Validation(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"password":"x"}`, "Email is required"},
		{`{"email":"nope","password":"x"}`, "Email must be a valid email address"},
		{`{"email":42,"password":"x"}`, "Email must be a string"},
		{`{"email":"a@b.co","password":"x","remember":true}`, `"remember" is not allowed`},
		{`{"email":`, "invalid payload"},
		{`{"email":"a@b.co","password":"x"}garbage`, "invalid payload"},
		{`{"email":"a@b.co","password":"x"}{"email":"c@d.co"}`, "invalid payload"},
		{``, "Email is required"},
	}
	for _, tc := range cases {
		stub := &stubAuthService{
			signInFn: func(context.Context, ports.SignInInput) (string, *domain.User, error) {
				t.Fatalf("service must not be called for %s", tc.body)
				return "", nil, nil
			},
		}
		c, _ := newTestContext(http.MethodPost, "/api/auth/signin", tc.body)
		err := NewAuthHandler(stub).SignIn(c)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.body, err)
		}
		if err.Error() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.body, tc.want, err.Error())
		}
	}
}

func TestAuthHandler_SignIn_KeepsPasswordWhitespace(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, in ports.SignInInput) (string, *domain.User, error) {
			if in.Email != "a@b.co" {
				t.Fatalf("expected trimmed email, got %q", in.Email)
			}
			if in.Password != "  Passw0rd! " {
				t.Fatalf("expected password as sent, got %q", in.Password)
			}
			return "tok", &domain.User{Email: in.Email}, nil
		},
	}
	c, _ := newTestContext(http.MethodPost, "/api/auth/signin", `{"email":" a@b.co ","password":"  Passw0rd! "}`)
	if err := NewAuthHandler(stub).SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthHandler_SignIn_AllowsTrailingWhitespace(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, in ports.SignInInput) (string, *domain.User, error) {
			return "tok", &domain.User{Email: in.Email}, nil
		},
	}
	c, _ := newTestContext(http.MethodPost, "/api/auth/signin", "{\"email\":\"a@b.co\",\"password\":\"x\"}\n")
	if err := NewAuthHandler(stub).SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthHandler_SignIn_PropagatesServiceError(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, ports.SignInInput) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newTestContext(http.MethodPost, "/api/auth/signin", `{"email":"a@b.co","password":"bad"}`)
	if err := NewAuthHandler(stub).SignIn(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, in ports.SignUpInput) (*domain.User, error) {
			return &domain.User{Name: in.Name, Email: in.Email, Role: domain.RoleUser}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{"name":"Ana","lastname":"Lopez","email":"ana@example.com","password":"Passw0rd!"}`)
	if err := NewAuthHandler(stub).SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_WeakPassword(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/api/auth/signup", `{"name":"Ana","lastname":"Lopez","email":"ana@example.com","password":"password1"}`)
	err := NewAuthHandler(&stubAuthService{}).SignUp(c)
	want := "Password must contain at least one letter, one number, and one special character"
	if err == nil || err.Error() != want {
		t.Fatalf("expected %q, got %v", want, err)
	}
}
