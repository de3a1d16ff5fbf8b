package postgres

import (
	"context"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type userRepository struct {
	*table[domain.User, *domain.User]
}

func (r userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email", email)
}

type departmentRepository struct {
	*table[domain.Department, *domain.Department]
}

func (r departmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	return r.findOne(ctx, "name", name)
}

func (r departmentRepository) FindByCode(ctx context.Context, code string) (*domain.Department, error) {
	return r.findOne(ctx, "code", code)
}

type positionRepository struct {
	*table[domain.Position, *domain.Position]
}

func (r positionRepository) FindByName(ctx context.Context, name string) (*domain.Position, error) {
	return r.findOne(ctx, "name", name)
}

type reviewerRepository struct {
	*table[domain.Reviewer, *domain.Reviewer]
}

func (r reviewerRepository) FindByDepartment(ctx context.Context, departmentID string) (*domain.Reviewer, error) {
	return r.findOne(ctx, "department_id", departmentID)
}

var absenceColumns = []string{"employee_id", "start_date", "end_date", "reason"}

func absenceValues(a *domain.Absence) []any {
	return []any{a.EmployeeID, a.StartDate, a.EndDate, a.Reason}
}

// NewStore binds one table per resource. The schema comes from Migrate.
func NewStore(db querier) *ports.Repositories {
	users := newTable[domain.User](db, "users", domain.ErrUserNotFound,
		[]string{"name", "lastname", "email", "password", "role"},
		func(u *domain.User) []any { return []any{u.Name, u.Lastname, u.Email, u.PasswordHash, u.Role} },
	).unique("users_email_key", domain.ErrEmailTaken)

	departments := newTable[domain.Department](db, "departments", domain.ErrDepartmentNotFound,
		[]string{"name", "code"},
		func(d *domain.Department) []any { return []any{d.Name, d.Code} },
	).unique("departments_name_key", domain.ErrDepartmentNameTaken).
		unique("departments_code_key", domain.ErrDepartmentCodeTaken)

	positions := newTable[domain.Position](db, "positions", domain.ErrPositionNotFound,
		[]string{"name", "description", "department_id"},
		func(p *domain.Position) []any { return []any{p.Name, p.Description, p.DepartmentID} },
	).unique("positions_name_key", domain.ErrPositionNameTaken)

	reviewers := newTable[domain.Reviewer](db, "reviewers", domain.ErrReviewerNotFound,
		[]string{"employee_id", "department_id"},
		func(r *domain.Reviewer) []any { return []any{r.EmployeeID, r.DepartmentID} },
	).unique("reviewers_department_id_key", domain.ErrDepartmentReviewed)

	return &ports.Repositories{
		Users:       userRepository{users},
		Departments: departmentRepository{departments},
		Positions:   positionRepository{positions},
		Employees: newTable[domain.Employee](db, "employees", domain.ErrEmployeeNotFound,
			[]string{"name", "lastname", "salary", "position_id"},
			func(e *domain.Employee) []any { return []any{e.Name, e.Lastname, e.Salary, e.PositionID} },
		),
		Leaves: newTable[domain.Leave](db, "leaves", domain.ErrLeaveNotFound, absenceColumns,
			func(l *domain.Leave) []any { return absenceValues(&l.Absence) },
		),
		Licenses: newTable[domain.License](db, "licenses", domain.ErrLicenseNotFound, absenceColumns,
			func(l *domain.License) []any { return absenceValues(&l.Absence) },
		),
		Payrolls: newTable[domain.Payroll](db, "payrolls", domain.ErrPayrollNotFound,
			[]string{"employee_id", "amount", "date"},
			func(p *domain.Payroll) []any { return []any{p.EmployeeID, p.Amount, p.Date} },
		),
		Performances: newTable[domain.Performance](db, "performances", domain.ErrPerformanceNotFound,
			[]string{"employee_id", "reviewer_id", "score", "comments", "date"},
			func(p *domain.Performance) []any {
				return []any{p.EmployeeID, p.ReviewerID, p.Score, p.Comments, p.Date}
			},
		),
		Reviewers: reviewerRepository{reviewers},
	}
}
