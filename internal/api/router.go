package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/hrmsystem/hrm-api/docs"
	"github.com/hrmsystem/hrm-api/internal/api/handler"
	"github.com/hrmsystem/hrm-api/internal/api/middleware"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// Options tune the HTTP surface. Zero values are valid.
type Options struct {
	CORSOrigins []string
	BodyLimit   string
	// RateLimit is the per-client request rate on /api in requests per
	// second. Zero disables it.
	RateLimit float64

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Deps are the collaborators the router mounts.
type Deps struct {
	Services   *ports.Services
	Identities middleware.IdentityFinder
	Tokens     ports.TokenVerifier
	Probes     map[string]handler.Pinger
	Logger     zerolog.Logger
}

type handlers struct {
	auth         *handler.AuthHandler
	users        *handler.UserHandler
	departments  *handler.DepartmentHandler
	positions    *handler.PositionHandler
	employees    *handler.EmployeeHandler
	leaves       *handler.LeaveHandler
	licenses     *handler.LicenseHandler
	payrolls     *handler.PayrollHandler
	performances *handler.PerformanceHandler
	reviewers    *handler.ReviewerHandler
}

func newHandlers(s *ports.Services) *handlers {
	return &handlers{
		auth:         handler.NewAuthHandler(s.Auth),
		users:        handler.NewUserHandler(s.Users),
		departments:  handler.NewDepartmentHandler(s.Departments),
		positions:    handler.NewPositionHandler(s.Positions),
		employees:    handler.NewEmployeeHandler(s.Employees),
		leaves:       handler.NewLeaveHandler(s.Leaves),
		licenses:     handler.NewLicenseHandler(s.Licenses),
		payrolls:     handler.NewPayrollHandler(s.Payrolls),
		performances: handler.NewPerformanceHandler(s.Performances),
		reviewers:    handler.NewReviewerHandler(s.Reviewers),
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options, deps Deps) *echo.Echo {
	if opts.BodyLimit == "" {
		opts.BodyLimit = "1M"
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	log := deps.Logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	if len(opts.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: opts.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}
	e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "hrm",
		Registerer: opts.Registerer,
	}))

	// --- Probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(deps.Probes)
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	api := e.Group("/api")
	if opts.RateLimit > 0 {
		api.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}
	authenticate := middleware.Authenticate(deps.Tokens, deps.Identities)
	mount(api, newHandlers(deps.Services).routes(), authenticate)

	return e
}
