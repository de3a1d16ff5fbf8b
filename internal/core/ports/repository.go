package ports

import (
	"context"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// Repository is the persistence surface shared by every managed resource.
// FindByID, Update and Delete return the resource's NotFound error when no
// record has the given id.
type Repository[T any] interface {
	Create(ctx context.Context, v *T) error
	List(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Repository[domain.User]
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type DepartmentRepository interface {
	Repository[domain.Department]
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	FindByCode(ctx context.Context, code string) (*domain.Department, error)
}

type PositionRepository interface {
	Repository[domain.Position]
	FindByName(ctx context.Context, name string) (*domain.Position, error)
}

type ReviewerRepository interface {
	Repository[domain.Reviewer]
	FindByDepartment(ctx context.Context, departmentID string) (*domain.Reviewer, error)
}

// Repositories bundles one repository per resource. Every store driver
// returns a fully populated value.
type Repositories struct {
	Users        UserRepository
	Departments  DepartmentRepository
	Positions    PositionRepository
	Employees    Repository[domain.Employee]
	Leaves       Repository[domain.Leave]
	Licenses     Repository[domain.License]
	Payrolls     Repository[domain.Payroll]
	Performances Repository[domain.Performance]
	Reviewers    ReviewerRepository
}
