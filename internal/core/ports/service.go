package ports

import (
	"context"
	"time"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// ResourceService is the operation set every resource handler drives.
// ChangeStatus toggles ACTIVE and INACTIVE when status is empty and sets
// the given status otherwise.
type ResourceService[T, In any] interface {
	Create(ctx context.Context, in In) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, in In) (*T, error)
	ChangeStatus(ctx context.Context, id string, status domain.Status) (*T, error)
	Delete(ctx context.Context, id string) error
}

// UserInput is a normalized user payload. A blank Password on update keeps
// the stored hash. A blank Role defaults to USER on create.
type UserInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Role     domain.Role
}

type DepartmentInput struct {
	Name string
	Code string
}

type PositionInput struct {
	Name         string
	Description  string
	DepartmentID string
}

type EmployeeInput struct {
	Name       string
	Lastname   string
	Salary     string
	PositionID string
}

// AbsenceInput is shared by leaves and licenses.
type AbsenceInput struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

type PayrollInput struct {
	EmployeeID string
	Amount     string
	Date       time.Time
}

type PerformanceInput struct {
	EmployeeID string
	ReviewerID string
	Score      domain.Score
	Comments   string
	Date       time.Time
}

// ReviewerInput carries an optional DepartmentID that, when set, must match
// the department derived from the employee's position.
type ReviewerInput struct {
	EmployeeID   string
	DepartmentID string
}

type (
	UserService        = ResourceService[domain.User, UserInput]
	DepartmentService  = ResourceService[domain.Department, DepartmentInput]
	PositionService    = ResourceService[domain.Position, PositionInput]
	EmployeeService    = ResourceService[domain.Employee, EmployeeInput]
	LeaveService       = ResourceService[domain.Leave, AbsenceInput]
	LicenseService     = ResourceService[domain.License, AbsenceInput]
	PayrollService     = ResourceService[domain.Payroll, PayrollInput]
	PerformanceService = ResourceService[domain.Performance, PerformanceInput]
	ReviewerService    = ResourceService[domain.Reviewer, ReviewerInput]
)

// Services bundles the resource services the router mounts.
type Services struct {
	Auth         AuthService
	Users        UserService
	Departments  DepartmentService
	Positions    PositionService
	Employees    EmployeeService
	Leaves       LeaveService
	Licenses     LicenseService
	Payrolls     PayrollService
	Performances PerformanceService
	Reviewers    ReviewerService
}
