package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/api/middleware"
	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// Access is the requirement a route places on the caller.
type Access int

const (
	Public Access = iota
	Authenticated
	Moderator
	Admin
)

// Route is one entry of the route table. The table is built once at startup.
type Route struct {
	Method  string
	Path    string
	Access  Access
	Handler echo.HandlerFunc
}

// crudHandler is the endpoint set of a managed resource.
type crudHandler interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	ChangeStatus(echo.Context) error
	Delete(echo.Context) error
}

// crudAccess lists the requirement for create, list, get, update,
// change-status and delete, in that order.
type crudAccess [6]Access

var (
	// writes restricted to moderators, status and delete to admins
	moderated = crudAccess{Moderator, Authenticated, Authenticated, Moderator, Admin, Admin}
	// any authenticated caller may write, status and delete stay with admins
	open = crudAccess{Authenticated, Authenticated, Authenticated, Authenticated, Admin, Admin}
)

func crudRoutes(path string, h crudHandler, a crudAccess) []Route {
	return []Route{
		{http.MethodPost, path, a[0], h.Create},
		{http.MethodGet, path, a[1], h.List},
		{http.MethodGet, path + "/:id", a[2], h.Get},
		{http.MethodPut, path + "/:id", a[3], h.Update},
		{http.MethodPut, path + "/:id/status", a[4], h.ChangeStatus},
		{http.MethodDelete, path + "/:id", a[5], h.Delete},
	}
}

func (h *handlers) routes() []Route {
	position := moderated
	position[0] = Admin

	var rs []Route
	rs = append(rs,
		Route{http.MethodPost, "/auth/signin", Public, h.auth.SignIn},
		Route{http.MethodPost, "/auth/signup", Public, h.auth.SignUp},
		Route{http.MethodGet, "/auth/me", Authenticated, h.auth.Me},
	)
	rs = append(rs, crudRoutes("/user", h.users, moderated)...)
	rs = append(rs, crudRoutes("/department", h.departments, open)...)
	rs = append(rs, crudRoutes("/position", h.positions, position)...)
	rs = append(rs, crudRoutes("/employee", h.employees, moderated)...)
	rs = append(rs, crudRoutes("/leave", h.leaves, moderated)...)
	rs = append(rs, crudRoutes("/license", h.licenses, open)...)
	rs = append(rs, crudRoutes("/payroll", h.payrolls, moderated)...)
	rs = append(rs, crudRoutes("/performance", h.performances, open)...)
	rs = append(rs, crudRoutes("/reviewer", h.reviewers, moderated)...)
	return rs
}

// stages returns the middleware a route of the given access runs through.
func stages(a Access, authenticate echo.MiddlewareFunc) []echo.MiddlewareFunc {
	switch a {
	case Authenticated:
		return []echo.MiddlewareFunc{authenticate}
	case Moderator:
		return []echo.MiddlewareFunc{authenticate, middleware.Authorize(domain.RoleModerator)}
	case Admin:
		return []echo.MiddlewareFunc{authenticate, middleware.Authorize(domain.RoleAdmin)}
	default:
		return nil
	}
}

func mount(g *echo.Group, table []Route, authenticate echo.MiddlewareFunc) {
	for _, r := range table {
		g.Add(r.Method, r.Path, r.Handler, stages(r.Access, authenticate)...)
	}
}
