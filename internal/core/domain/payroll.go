package domain

import "time"

var (
	ErrPayrollNotFound = NotFound("Payroll not found")
	ErrPayrollsEmpty   = NotFound("Payrolls not found")
	ErrAmountMismatch  = Invalid("Amount must match the employee's salary")
)

// Payroll records a payment to an employee. Amount always equals the
// employee's salary at the time the payroll was written.
type Payroll struct {
	Record     `bson:",inline"`
	EmployeeID string    `json:"employeeId" bson:"employee_id" db:"employee_id"`
	Amount     string    `json:"amount" bson:"amount" db:"amount"`
	Date       time.Time `json:"date" bson:"date" db:"date"`
}
