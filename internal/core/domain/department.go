package domain

var (
	ErrDepartmentNotFound  = NotFound("Department not found")
	ErrDepartmentsEmpty    = NotFound("Departments not found")
	ErrDepartmentNameTaken = Conflict("Department name already in use")
	ErrDepartmentCodeTaken = Conflict("Department code already in use")
)

// Department is an organisational unit. Name and code are unique.
type Department struct {
	Record `bson:",inline"`
	Name   string `json:"name" bson:"name" db:"name"`
	Code   string `json:"code" bson:"code" db:"code"`
}
