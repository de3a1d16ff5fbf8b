package domain

var (
	ErrEmployeeNotFound = NotFound("Employee not found")
	ErrEmployeesEmpty   = NotFound("Employees not found")
)

// Employee holds a position. Salary keeps the two-decimal string form it
// was submitted in (e.g. "38800.00").
type Employee struct {
	Record     `bson:",inline"`
	Name       string `json:"name" bson:"name" db:"name"`
	Lastname   string `json:"lastname" bson:"lastname" db:"lastname"`
	Salary     string `json:"salary" bson:"salary" db:"salary"`
	PositionID string `json:"positionId" bson:"position_id" db:"position_id"`
}
