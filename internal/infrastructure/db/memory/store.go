package memory

import (
	"context"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type users struct {
	*table[domain.User, *domain.User]
}

func (r users) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.findOne(func(u *domain.User) bool { return u.Email == email })
}

type departments struct {
	*table[domain.Department, *domain.Department]
}

func (r departments) FindByName(_ context.Context, name string) (*domain.Department, error) {
	return r.findOne(func(d *domain.Department) bool { return d.Name == name })
}

func (r departments) FindByCode(_ context.Context, code string) (*domain.Department, error) {
	return r.findOne(func(d *domain.Department) bool { return d.Code == code })
}

type positions struct {
	*table[domain.Position, *domain.Position]
}

func (r positions) FindByName(_ context.Context, name string) (*domain.Position, error) {
	return r.findOne(func(p *domain.Position) bool { return p.Name == name })
}

type reviewers struct {
	*table[domain.Reviewer, *domain.Reviewer]
}

func (r reviewers) FindByDepartment(_ context.Context, departmentID string) (*domain.Reviewer, error) {
	return r.findOne(func(rv *domain.Reviewer) bool { return rv.DepartmentID == departmentID })
}

// New returns empty in-memory repositories with the same unique constraints
// the database stores enforce.
func New() *ports.Repositories {
	return &ports.Repositories{
		Users: users{newTable[domain.User](domain.ErrUserNotFound,
			uniqueKey[domain.User]{func(u *domain.User) string { return u.Email }, domain.ErrEmailTaken},
		)},
		Departments: departments{newTable[domain.Department](domain.ErrDepartmentNotFound,
			uniqueKey[domain.Department]{func(d *domain.Department) string { return d.Name }, domain.ErrDepartmentNameTaken},
			uniqueKey[domain.Department]{func(d *domain.Department) string { return d.Code }, domain.ErrDepartmentCodeTaken},
		)},
		Positions: positions{newTable[domain.Position](domain.ErrPositionNotFound,
			uniqueKey[domain.Position]{func(p *domain.Position) string { return p.Name }, domain.ErrPositionNameTaken},
		)},
		Employees:    newTable[domain.Employee](domain.ErrEmployeeNotFound),
		Leaves:       newTable[domain.Leave](domain.ErrLeaveNotFound),
		Licenses:     newTable[domain.License](domain.ErrLicenseNotFound),
		Payrolls:     newTable[domain.Payroll](domain.ErrPayrollNotFound),
		Performances: newTable[domain.Performance](domain.ErrPerformanceNotFound),
		Reviewers: reviewers{newTable[domain.Reviewer](domain.ErrReviewerNotFound,
			uniqueKey[domain.Reviewer]{func(r *domain.Reviewer) string { return r.DepartmentID }, domain.ErrDepartmentReviewed},
		)},
	}
}
