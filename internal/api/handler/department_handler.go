package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type DepartmentHandler struct {
	resource[domain.Department, ports.DepartmentInput]
}

func NewDepartmentHandler(svc ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{resource[domain.Department, ports.DepartmentInput]{
		svc:      svc,
		singular: "department",
		plural:   "departments",
		bind:     bindInput[departmentRequest, ports.DepartmentInput],
		status:   toggleStatus,
	}}
}

// Create stores a new department.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /department [post]
func (h *DepartmentHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every department.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /department [get]
func (h *DepartmentHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one department by id.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /department/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a department.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Department ID"
// @Param        body  body      departmentRequest  true  "Department"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /department/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a department. Toggles the department between ACTIVE and INACTIVE.
//
// @Summary      Change department status
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Department ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /department/{id}/status [put]
func (h *DepartmentHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a department.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /department/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error { return h.remove(c) }
