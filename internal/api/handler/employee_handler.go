package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type EmployeeHandler struct {
	resource[domain.Employee, ports.EmployeeInput]
}

func NewEmployeeHandler(svc ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{resource[domain.Employee, ports.EmployeeInput]{
		svc:      svc,
		singular: "employee",
		plural:   "employees",
		bind:     bindInput[employeeRequest, ports.EmployeeInput],
		status:   toggleStatus,
	}}
}

// Create stores a new employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employee [get]
func (h *EmployeeHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one employee by id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employee/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of an employee.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of an employee. Toggles the employee between ACTIVE and INACTIVE.
//
// @Summary      Change employee status
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Employee ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employee/{id}/status [put]
func (h *EmployeeHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error { return h.remove(c) }
