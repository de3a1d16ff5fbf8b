package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PayrollHandler struct {
	resource[domain.Payroll, ports.PayrollInput]
}

func NewPayrollHandler(svc ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{resource[domain.Payroll, ports.PayrollInput]{
		svc:      svc,
		singular: "payroll",
		plural:   "payrolls",
		bind:     bindInput[payrollRequest, ports.PayrollInput],
		status:   toggleStatus,
	}}
}

// Create stores a new payroll.
//
// @Summary      Create a payroll
// @Tags         payrolls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      payrollRequest  true  "Payroll"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /payroll [post]
func (h *PayrollHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every payroll.
//
// @Summary      List payrolls
// @Tags         payrolls
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payroll [get]
func (h *PayrollHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one payroll by id.
//
// @Summary      Get a payroll
// @Tags         payrolls
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payroll ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payroll/{id} [get]
func (h *PayrollHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a payroll.
//
// @Summary      Update a payroll
// @Tags         payrolls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Payroll ID"
// @Param        body  body      payrollRequest  true  "Payroll"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /payroll/{id} [put]
func (h *PayrollHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a payroll. Toggles the payroll between ACTIVE and INACTIVE.
//
// @Summary      Change payroll status
// @Tags         payrolls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Payroll ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /payroll/{id}/status [put]
func (h *PayrollHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a payroll.
//
// @Summary      Delete a payroll
// @Tags         payrolls
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payroll ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /payroll/{id} [delete]
func (h *PayrollHandler) Delete(c echo.Context) error { return h.remove(c) }
