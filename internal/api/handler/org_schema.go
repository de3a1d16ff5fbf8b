package handler

import "github.com/hrmsystem/hrm-api/internal/core/ports"

type departmentRequest struct {
	Name string `json:"name" validate:"required,min=3,max=20" label:"Name"`
	Code string `json:"code" validate:"required,deptcode,len=8" label:"Code"`
}

func (r *departmentRequest) input() ports.DepartmentInput {
	return ports.DepartmentInput{Name: r.Name, Code: r.Code}
}

type positionRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=50" label:"Name"`
	Description  string `json:"description" validate:"required,min=10,max=70" label:"Description"`
	DepartmentID string `json:"departmentId" validate:"required" label:"Department ID"`
}

func (r *positionRequest) input() ports.PositionInput {
	return ports.PositionInput{Name: r.Name, Description: r.Description, DepartmentID: r.DepartmentID}
}

type employeeRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=50" label:"Name"`
	Lastname   string `json:"lastname" validate:"required,min=3,max=50" label:"Lastname"`
	Salary     string `json:"salary" validate:"required,money" label:"Salary"`
	PositionID string `json:"positionId" validate:"required" label:"Position ID"`
}

func (r *employeeRequest) input() ports.EmployeeInput {
	return ports.EmployeeInput{Name: r.Name, Lastname: r.Lastname, Salary: r.Salary, PositionID: r.PositionID}
}

// reviewerRequest may carry the department for cross-checking. The stored
// department always comes from the employee's position.
type reviewerRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required" label:"Employee ID"`
	DepartmentID string `json:"departmentId" label:"Department ID"`
}

func (r *reviewerRequest) input() ports.ReviewerInput {
	return ports.ReviewerInput{EmployeeID: r.EmployeeID, DepartmentID: r.DepartmentID}
}
