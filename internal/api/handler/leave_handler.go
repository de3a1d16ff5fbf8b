package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type LeaveHandler struct {
	resource[domain.Leave, ports.AbsenceInput]
}

func NewLeaveHandler(svc ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{resource[domain.Leave, ports.AbsenceInput]{
		svc:      svc,
		singular: "leave",
		plural:   "leaves",
		bind:     bindInput[absenceRequest, ports.AbsenceInput],
		status:   bindStatus,
	}}
}

// Create stores a new leave.
//
// @Summary      Create a leave
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      absenceRequest  true  "Leave"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leave [post]
func (h *LeaveHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every leave.
//
// @Summary      List leaves
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /leave [get]
func (h *LeaveHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one leave by id.
//
// @Summary      Get a leave
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Leave ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /leave/{id} [get]
func (h *LeaveHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a leave.
//
// @Summary      Update a leave
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Leave ID"
// @Param        body  body      absenceRequest  true  "Leave"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leave/{id} [put]
func (h *LeaveHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a leave. Sets the leave to PENDING, APPROVED or REJECTED.
//
// @Summary      Change leave status
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Leave ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leave/{id}/status [put]
func (h *LeaveHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a leave.
//
// @Summary      Delete a leave
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Leave ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /leave/{id} [delete]
func (h *LeaveHandler) Delete(c echo.Context) error { return h.remove(c) }
