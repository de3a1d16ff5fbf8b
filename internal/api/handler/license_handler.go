package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type LicenseHandler struct {
	resource[domain.License, ports.AbsenceInput]
}

func NewLicenseHandler(svc ports.LicenseService) *LicenseHandler {
	return &LicenseHandler{resource[domain.License, ports.AbsenceInput]{
		svc:      svc,
		singular: "license",
		plural:   "licenses",
		bind:     bindInput[absenceRequest, ports.AbsenceInput],
		status:   bindStatus,
	}}
}

// Create stores a new license.
//
// @Summary      Create a license
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      absenceRequest  true  "License"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /license [post]
func (h *LicenseHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every license.
//
// @Summary      List licenses
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /license [get]
func (h *LicenseHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one license by id.
//
// @Summary      Get a license
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "License ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /license/{id} [get]
func (h *LicenseHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a license.
//
// @Summary      Update a license
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "License ID"
// @Param        body  body      absenceRequest  true  "License"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /license/{id} [put]
func (h *LicenseHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a license. Sets the license to PENDING, APPROVED or REJECTED.
//
// @Summary      Change license status
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "License ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /license/{id}/status [put]
func (h *LicenseHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a license.
//
// @Summary      Delete a license
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "License ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /license/{id} [delete]
func (h *LicenseHandler) Delete(c echo.Context) error { return h.remove(c) }
