package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PayrollService struct {
	crud[domain.Payroll, *domain.Payroll]
	payrolls  ports.Repository[domain.Payroll]
	employees ports.Repository[domain.Employee]
}

func NewPayrollService(payrolls ports.Repository[domain.Payroll], employees ports.Repository[domain.Employee], logger zerolog.Logger) *PayrollService {
	return &PayrollService{
		crud:      newCrud[domain.Payroll](payrolls, "payroll", domain.ErrPayrollsEmpty, logger),
		payrolls:  payrolls,
		employees: employees,
	}
}

func (s *PayrollService) Create(ctx context.Context, in ports.PayrollInput) (*domain.Payroll, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	p := &domain.Payroll{EmployeeID: in.EmployeeID, Amount: in.Amount, Date: in.Date.UTC()}
	if err := s.insert(ctx, p, domain.StatusActive); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PayrollService) Update(ctx context.Context, id string, in ports.PayrollInput) (*domain.Payroll, error) {
	p, err := s.payrolls.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	p.EmployeeID, p.Amount, p.Date = in.EmployeeID, in.Amount, in.Date.UTC()
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("payroll_id", id).Msg("payroll updated")
	return p, nil
}

// check requires the employee to exist and the amount to equal its salary.
func (s *PayrollService) check(ctx context.Context, in ports.PayrollInput) error {
	e, err := s.employees.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return err
	}
	want, werr := cents(e.Salary)
	got, gerr := cents(in.Amount)
	if werr != nil || gerr != nil || want != got {
		return domain.ErrAmountMismatch
	}
	return nil
}

// cents parses a "1234.56" money string into an integer number of cents.
func cents(s string) (int64, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(s), ".")
	for len(frac) < 2 {
		frac += "0"
	}
	return strconv.ParseInt(whole+frac[:2], 10, 64)
}
