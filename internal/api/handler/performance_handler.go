package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PerformanceHandler struct {
	resource[domain.Performance, ports.PerformanceInput]
}

func NewPerformanceHandler(svc ports.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{resource[domain.Performance, ports.PerformanceInput]{
		svc:      svc,
		singular: "performance",
		plural:   "performances",
		bind:     bindInput[performanceRequest, ports.PerformanceInput],
		status:   toggleStatus,
	}}
}

// Create stores a new performance.
//
// @Summary      Create a performance
// @Tags         performances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      performanceRequest  true  "Performance"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /performance [post]
func (h *PerformanceHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every performance.
//
// @Summary      List performances
// @Tags         performances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /performance [get]
func (h *PerformanceHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one performance by id.
//
// @Summary      Get a performance
// @Tags         performances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Performance ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /performance/{id} [get]
func (h *PerformanceHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a performance.
//
// @Summary      Update a performance
// @Tags         performances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Performance ID"
// @Param        body  body      performanceRequest  true  "Performance"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /performance/{id} [put]
func (h *PerformanceHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a performance. Toggles the performance between ACTIVE and INACTIVE.
//
// @Summary      Change performance status
// @Tags         performances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Performance ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /performance/{id}/status [put]
func (h *PerformanceHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a performance.
//
// @Summary      Delete a performance
// @Tags         performances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Performance ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /performance/{id} [delete]
func (h *PerformanceHandler) Delete(c echo.Context) error { return h.remove(c) }
