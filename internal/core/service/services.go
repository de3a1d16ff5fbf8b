package service

import (
	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// Deps are the collaborators the auth flow needs besides the stores.
type Deps struct {
	Hasher  ports.PasswordHasher
	Tokens  ports.TokenIssuer
	Limiter ports.SignInLimiter
}

// New wires one service per resource over repos.
func New(repos *ports.Repositories, deps Deps, logger zerolog.Logger) *ports.Services {
	return &ports.Services{
		Auth:         NewAuthService(repos.Users, deps.Hasher, deps.Tokens, deps.Limiter, logger),
		Users:        NewUserService(repos.Users, deps.Hasher, logger),
		Departments:  NewDepartmentService(repos.Departments, logger),
		Positions:    NewPositionService(repos.Positions, repos.Departments, logger),
		Employees:    NewEmployeeService(repos.Employees, repos.Positions, logger),
		Leaves:       NewLeaveService(repos.Leaves, repos.Employees, logger),
		Licenses:     NewLicenseService(repos.Licenses, repos.Employees, logger),
		Payrolls:     NewPayrollService(repos.Payrolls, repos.Employees, logger),
		Performances: NewPerformanceService(repos.Performances, repos.Employees, repos.Reviewers, logger),
		Reviewers:    NewReviewerService(repos.Reviewers, repos.Employees, repos.Positions, logger),
	}
}
