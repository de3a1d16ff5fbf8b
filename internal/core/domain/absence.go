package domain

import "time"

var (
	ErrLeaveNotFound   = NotFound("Leave not found")
	ErrLeavesEmpty     = NotFound("Leaves not found")
	ErrLicenseNotFound = NotFound("License not found")
	ErrLicensesEmpty   = NotFound("Licenses not found")
)

// ReviewStatuses are the states a leave or license request moves through.
var ReviewStatuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Absence is the shape shared by leaves and licenses: an employee away from
// StartDate until EndDate, pending approval.
type Absence struct {
	Record     `bson:",inline"`
	EmployeeID string    `json:"employeeId" bson:"employee_id" db:"employee_id"`
	StartDate  time.Time `json:"startDate" bson:"start_date" db:"start_date"`
	EndDate    time.Time `json:"endDate" bson:"end_date" db:"end_date"`
	Reason     string    `json:"reason" bson:"reason" db:"reason"`
}

// Leave is a leave-of-absence request.
type Leave struct {
	Absence `bson:",inline"`
}

// License is a licensed absence (medical, parental, ...).
type License struct {
	Absence `bson:",inline"`
}

// Details gives the shared absence service access to the embedded fields.
func (a *Absence) Details() *Absence { return a }

// AbsenceEntity is satisfied by *Leave and *License.
type AbsenceEntity[T any] interface {
	Entity[T]
	Details() *Absence
}
