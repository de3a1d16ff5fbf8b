package domain

var (
	ErrReviewerNotFound   = NotFound("Reviewer not found")
	ErrReviewersEmpty     = NotFound("Reviewers not found")
	ErrDepartmentReviewed = Conflict("This department already has a reviewer")
	ErrReviewerDepartment = Invalid("Department ID must match the employee's department")
)

// Reviewer is the employee who writes performance reviews for a department.
// A department has at most one reviewer.
type Reviewer struct {
	Record       `bson:",inline"`
	EmployeeID   string `json:"employeeId" bson:"employee_id" db:"employee_id"`
	DepartmentID string `json:"departmentId" bson:"department_id" db:"department_id"`
}
