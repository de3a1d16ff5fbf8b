package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/memory"
)

type fixture struct {
	ctx  context.Context
	svc  *ports.Services
	dept *domain.Department
	pos  *domain.Position
	emp  *domain.Employee
}

// newFixture seeds one department, position and employee.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	svc := New(memory.New(), Deps{
		Hasher: NewBcryptHasher(bcrypt.MinCost),
		Tokens: NewTokenService("secret", time.Hour),
	}, zerolog.Nop())

	dept, err := svc.Departments.Create(ctx, ports.DepartmentInput{Name: "Sistemas", Code: "TI000034"})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}
	pos, err := svc.Positions.Create(ctx, ports.PositionInput{Name: "Developer", Description: "Writes and ships code", DepartmentID: dept.ID})
	if err != nil {
		t.Fatalf("create position: %v", err)
	}
	emp, err := svc.Employees.Create(ctx, ports.EmployeeInput{Name: "Juan", Lastname: "Perez", Salary: "38800.00", PositionID: pos.ID})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return &fixture{ctx: ctx, svc: svc, dept: dept, pos: pos, emp: emp}
}

func TestDepartmentService_Uniqueness(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Departments.Create(f.ctx, ports.DepartmentInput{Name: "Otro", Code: "TI000034"}); !errors.Is(err, domain.ErrDepartmentCodeTaken) {
		t.Fatalf("expected ErrDepartmentCodeTaken, got %v", err)
	}
	if _, err := f.svc.Departments.Create(f.ctx, ports.DepartmentInput{Name: "Sistemas", Code: "RH000001"}); !errors.Is(err, domain.ErrDepartmentNameTaken) {
		t.Fatalf("expected ErrDepartmentNameTaken, got %v", err)
	}

	// Updating a department with its own name and code is allowed.
	got, err := f.svc.Departments.Update(f.ctx, f.dept.ID, ports.DepartmentInput{Name: "Sistemas", Code: "TI000034"})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Fatalf("updatedAt %v before createdAt %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestDepartmentService_ReadBack(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Departments.Get(f.ctx, f.dept.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Sistemas" || got.Code != "TI000034" || got.Status != domain.StatusActive {
		t.Fatalf("unexpected department: %+v", got)
	}
}

func TestChangeStatus_TogglesTwice(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Departments.ChangeStatus(f.ctx, f.dept.ID, "")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if first.Status != domain.StatusInactive {
		t.Fatalf("expected INACTIVE, got %s", first.Status)
	}
	second, err := f.svc.Departments.ChangeStatus(f.ctx, f.dept.ID, "")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if second.Status != domain.StatusActive {
		t.Fatalf("expected ACTIVE after two toggles, got %s", second.Status)
	}
}

func TestChangeStatus_RejectsForeignStatus(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Departments.ChangeStatus(f.ctx, f.dept.ID, domain.StatusApproved); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := f.svc.Departments.ChangeStatus(f.ctx, "missing", ""); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestList_EmptyIsNotFound(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Payrolls.List(f.ctx); !errors.Is(err, domain.ErrPayrollsEmpty) {
		t.Fatalf("expected ErrPayrollsEmpty, got %v", err)
	}
	list, err := f.svc.Departments.List(f.ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one department, got %d (%v)", len(list), err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	if err := f.svc.Employees.Delete(f.ctx, f.emp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.svc.Employees.Get(f.ctx, f.emp.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestPositionService_DepartmentMustExist(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Positions.Create(f.ctx, ports.PositionInput{Name: "Tester", Description: "Breaks things on purpose", DepartmentID: "missing"})
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
	_, err = f.svc.Positions.Create(f.ctx, ports.PositionInput{Name: "Developer", Description: "Duplicate position name", DepartmentID: f.dept.ID})
	if !errors.Is(err, domain.ErrPositionNameTaken) {
		t.Fatalf("expected ErrPositionNameTaken, got %v", err)
	}
}

func TestEmployeeService_PositionMustExist(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Employees.Update(f.ctx, f.emp.ID, ports.EmployeeInput{Name: "Juan", Lastname: "Perez", Salary: "1.00", PositionID: "missing"})
	if !errors.Is(err, domain.ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestPayrollService_AmountMustMatchSalary(t *testing.T) {
	f := newFixture(t)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := f.svc.Payrolls.Create(f.ctx, ports.PayrollInput{EmployeeID: f.emp.ID, Amount: "100.00", Date: date}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for mismatched amount, got %v", err)
	}
	p, err := f.svc.Payrolls.Create(f.ctx, ports.PayrollInput{EmployeeID: f.emp.ID, Amount: "38800.00", Date: date})
	if err != nil {
		t.Fatalf("create payroll: %v", err)
	}
	if p.Amount != "38800.00" || !p.Date.Equal(date) {
		t.Fatalf("unexpected payroll: %+v", p)
	}
	if _, err := f.svc.Payrolls.Create(f.ctx, ports.PayrollInput{EmployeeID: "missing", Amount: "38800.00", Date: date}); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCents(t *testing.T) {
	cases := map[string]int64{"38800.00": 3880000, "0.50": 50, "12": 1200, "12.5": 1250}
	for in, want := range cases {
		got, err := cents(in)
		if err != nil || got != want {
			t.Fatalf("cents(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	if _, err := cents("abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

func TestLeaveService_Workflow(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.Leaves.Create(f.ctx, ports.AbsenceInput{EmployeeID: f.emp.ID, StartDate: start, EndDate: start, Reason: "Vacaciones"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for end == start, got %v", err)
	}

	leave, err := f.svc.Leaves.Create(f.ctx, ports.AbsenceInput{EmployeeID: f.emp.ID, StartDate: start, EndDate: start.AddDate(0, 0, 5), Reason: "Vacaciones"})
	if err != nil {
		t.Fatalf("create leave: %v", err)
	}
	if leave.Status != domain.StatusPending {
		t.Fatalf("expected PENDING, got %s", leave.Status)
	}

	if _, err := f.svc.Leaves.ChangeStatus(f.ctx, leave.ID, ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected status to be required, got %v", err)
	}
	if _, err := f.svc.Leaves.ChangeStatus(f.ctx, leave.ID, domain.StatusActive); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ACTIVE to be rejected for leaves, got %v", err)
	}
	approved, err := f.svc.Leaves.ChangeStatus(f.ctx, leave.ID, domain.StatusApproved)
	if err != nil {
		t.Fatalf("approve leave: %v", err)
	}
	if approved.Status != domain.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}

	edited, err := f.svc.Leaves.Update(f.ctx, leave.ID, ports.AbsenceInput{EmployeeID: f.emp.ID, StartDate: start, EndDate: start.AddDate(0, 0, 3), Reason: "Viaje"})
	if err != nil {
		t.Fatalf("update leave: %v", err)
	}
	if edited.Status != domain.StatusApproved || edited.Reason != "Viaje" {
		t.Fatalf("expected update to keep APPROVED and change the reason, got %s %q", edited.Status, edited.Reason)
	}

	// The date ordering rule applies on update as well.
	_, err = f.svc.Leaves.Update(f.ctx, leave.ID, ports.AbsenceInput{EmployeeID: f.emp.ID, StartDate: start, EndDate: start.AddDate(0, 0, -1), Reason: "x"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on update, got %v", err)
	}
}

func TestLicenseService_EmployeeMustExist(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.Licenses.Create(f.ctx, ports.AbsenceInput{EmployeeID: "missing", StartDate: start, EndDate: start.Add(time.Hour), Reason: "Medica"})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestReviewerService_OnePerDepartment(t *testing.T) {
	f := newFixture(t)

	r, err := f.svc.Reviewers.Create(f.ctx, ports.ReviewerInput{EmployeeID: f.emp.ID})
	if err != nil {
		t.Fatalf("create reviewer: %v", err)
	}
	if r.DepartmentID != f.dept.ID {
		t.Fatalf("expected department %s, got %s", f.dept.ID, r.DepartmentID)
	}

	if _, err := f.svc.Reviewers.Create(f.ctx, ports.ReviewerInput{EmployeeID: f.emp.ID}); !errors.Is(err, domain.ErrDepartmentReviewed) {
		t.Fatalf("expected ErrDepartmentReviewed, got %v", err)
	}
	if _, err := f.svc.Reviewers.Update(f.ctx, r.ID, ports.ReviewerInput{EmployeeID: f.emp.ID, DepartmentID: f.dept.ID}); err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if _, err := f.svc.Reviewers.Update(f.ctx, r.ID, ports.ReviewerInput{EmployeeID: f.emp.ID, DepartmentID: "other"}); !errors.Is(err, domain.ErrReviewerDepartment) {
		t.Fatalf("expected ErrReviewerDepartment, got %v", err)
	}
}

func TestPerformanceService_ReviewerMustExist(t *testing.T) {
	f := newFixture(t)
	date := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	in := ports.PerformanceInput{EmployeeID: f.emp.ID, ReviewerID: "missing", Score: domain.ScoreFour, Comments: "Buen trabajo", Date: date}
	if _, err := f.svc.Performances.Create(f.ctx, in); !errors.Is(err, domain.ErrReviewerNotFound) {
		t.Fatalf("expected ErrReviewerNotFound, got %v", err)
	}

	r, err := f.svc.Reviewers.Create(f.ctx, ports.ReviewerInput{EmployeeID: f.emp.ID})
	if err != nil {
		t.Fatalf("create reviewer: %v", err)
	}
	in.ReviewerID = r.ID
	p, err := f.svc.Performances.Create(f.ctx, in)
	if err != nil {
		t.Fatalf("create performance: %v", err)
	}
	if p.Score != domain.ScoreFour || p.ReviewerID != r.ID {
		t.Fatalf("unexpected performance: %+v", p)
	}
}

func TestUserService_RoleCeiling(t *testing.T) {
	f := newFixture(t)
	moderator := &domain.User{Record: domain.Record{ID: "mod"}, Role: domain.RoleModerator}
	ctx := ports.WithIdentity(f.ctx, moderator)

	_, err := f.svc.Users.Create(ctx, ports.UserInput{Name: "Eve", Lastname: "Root", Email: "eve@example.com", Password: "Passw0rd!", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	u, err := f.svc.Users.Create(ctx, ports.UserInput{Name: "Bob", Lastname: "Smith", Email: "bob@example.com", Password: "Passw0rd!"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("expected default USER role, got %s", u.Role)
	}

	updated, err := f.svc.Users.Update(ctx, u.ID, ports.UserInput{Name: "Bobby", Lastname: "Smith", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.PasswordHash != u.PasswordHash {
		t.Fatalf("blank password must keep the stored hash")
	}
}
