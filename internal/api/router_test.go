package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/service"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/memory"
)

const testPassword = "Admin12345"

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	repos := memory.New()
	hasher := service.NewBcryptHasher(bcrypt.MinCost)
	tokens := service.NewTokenService("test-secret", time.Hour)
	log := zerolog.Nop()

	require.NoError(t, service.EnsureIdentities(context.Background(), repos.Users, hasher, log,
		service.SeedIdentity{Name: "Admin", Lastname: "Admin", Email: "Admin@example.com", Password: testPassword, Role: domain.RoleAdmin},
		service.SeedIdentity{Name: "Moderator", Lastname: "Moderator", Email: "Moderator@example.com", Password: testPassword, Role: domain.RoleModerator},
	))

	services := service.New(repos, service.Deps{Hasher: hasher, Tokens: tokens, Limiter: service.NopLimiter{}}, log)
	registry := prometheus.NewRegistry()
	return NewRouter(Options{Registerer: registry, Gatherer: registry}, Deps{
		Services:   services,
		Identities: repos.Users,
		Tokens:     tokens,
		Logger:     log,
	})
}

func do(e *echo.Echo, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func signIn(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec, out := do(e, http.MethodPost, "/api/auth/signin", "", `{"email":"`+email+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Root(t *testing.T) {
	e := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WORKING...")
}

func TestRouter_SignIn(t *testing.T) {
	e := newTestRouter(t)
	signIn(t, e, "Admin@example.com")

	rec, out := do(e, http.MethodPost, "/api/auth/signin", "", `{"email":"Admin@example.com","password":"Wrong12345"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid password", out["error"])

	rec, _ = do(e, http.MethodPost, "/api/auth/signin", "", `{"email":"nobody@example.com","password":"Wrong12345"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DepartmentLifecycle(t *testing.T) {
	e := newTestRouter(t)
	admin := signIn(t, e, "Admin@example.com")
	moderator := signIn(t, e, "Moderator@example.com")

	rec, out := do(e, http.MethodPost, "/api/department", moderator, `{"name":"Sistemas","code":"TI000034"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Created department successfully", out["message"])
	dept, _ := out["department"].(map[string]any)
	id, _ := dept["id"].(string)
	require.NotEmpty(t, id)

	rec, out = do(e, http.MethodPost, "/api/department", moderator, `{"name":"Finanzas","code":"TI000034"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Department code already in use", out["error"])

	status := "/api/department/" + id + "/status"
	rec, out = do(e, http.MethodPut, status, "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No token provided", out["error"])

	rec, out = do(e, http.MethodPut, status, moderator, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Require Admin Role", out["error"])

	rec, out = do(e, http.MethodPut, status, admin, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Status change to INACTIVE", out["message"])

	rec, out = do(e, http.MethodGet, "/api/department/"+id, moderator, "")
	require.Equal(t, http.StatusOK, rec.Code)
	dept, _ = out["department"].(map[string]any)
	assert.Equal(t, "INACTIVE", dept["status"])
}

func TestRouter_EmptyListIsNotFound(t *testing.T) {
	e := newTestRouter(t)
	token := signIn(t, e, "Moderator@example.com")

	rec, out := do(e, http.MethodGet, "/api/employee", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employees not found", out["error"])
}

func TestRouter_MetricsExposed(t *testing.T) {
	e := newTestRouter(t)
	do(e, http.MethodGet, "/health", "", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "requests_total")
}

// createID posts body to path and returns the id of the created record.
func createID(t *testing.T, e *echo.Echo, path, token, key, body string) string {
	t.Helper()
	rec, out := do(e, http.MethodPost, path, token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v, _ := out[key].(map[string]any)
	id, _ := v["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestRouter_LicenseStatusOnlyThroughStatusRoute(t *testing.T) {
	e := newTestRouter(t)
	admin := signIn(t, e, "Admin@example.com")

	dept := createID(t, e, "/api/department", admin, "department", `{"name":"Sistemas","code":"TI000034"}`)
	pos := createID(t, e, "/api/position", admin, "position",
		`{"name":"Desarrollador","description":"Desarrollo de software","departmentId":"`+dept+`"}`)
	emp := createID(t, e, "/api/employee", admin, "employee",
		`{"name":"Carlos","lastname":"Lopez","salary":"38800.00","positionId":"`+pos+`"}`)

	rec, _ := do(e, http.MethodPost, "/api/auth/signup", "", `{"name":"Laura","lastname":"Perez","email":"laura@example.com","password":"Laura123!"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec, out := do(e, http.MethodPost, "/api/auth/signin", "", `{"email":"laura@example.com","password":"Laura123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user, _ := out["token"].(string)

	fields := `"employeeId":"` + emp + `","startDate":"2024-05-01","endDate":"2024-05-06","reason":"Consulta medica"`

	rec, out = do(e, http.MethodPost, "/api/license", user, `{`+fields+`,"status":"APPROVED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"status" is not allowed`, out["error"])

	rec, out = do(e, http.MethodPost, "/api/license", user, `{`+fields+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	license, _ := out["license"].(map[string]any)
	assert.Equal(t, "PENDING", license["status"])
	id, _ := license["id"].(string)

	rec, out = do(e, http.MethodPut, "/api/license/"+id, user, `{`+fields+`,"status":"REJECTED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"status" is not allowed`, out["error"])

	rec, _ = do(e, http.MethodPut, "/api/license/"+id+"/status", user, `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, out = do(e, http.MethodGet, "/api/license/"+id, user, "")
	require.Equal(t, http.StatusOK, rec.Code)
	license, _ = out["license"].(map[string]any)
	assert.Equal(t, "PENDING", license["status"])

	rec, out = do(e, http.MethodPut, "/api/license/"+id+"/status", admin, `{"status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Status change to APPROVED", out["message"])
}
