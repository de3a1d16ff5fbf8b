package domain

var (
	ErrPositionNotFound  = NotFound("Position not found")
	ErrPositionsEmpty    = NotFound("Positions not found")
	ErrPositionNameTaken = Conflict("Position name already in use")
)

// Position is a job title that belongs to a department.
type Position struct {
	Record       `bson:",inline"`
	Name         string `json:"name" bson:"name" db:"name"`
	Description  string `json:"description" bson:"description" db:"description"`
	DepartmentID string `json:"departmentId" bson:"department_id" db:"department_id"`
}
