package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type PositionHandler struct {
	resource[domain.Position, ports.PositionInput]
}

func NewPositionHandler(svc ports.PositionService) *PositionHandler {
	return &PositionHandler{resource[domain.Position, ports.PositionInput]{
		svc:      svc,
		singular: "position",
		plural:   "positions",
		bind:     bindInput[positionRequest, ports.PositionInput],
		status:   toggleStatus,
	}}
}

// Create stores a new position.
//
// @Summary      Create a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      positionRequest  true  "Position"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /position [post]
func (h *PositionHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every position.
//
// @Summary      List positions
// @Tags         positions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /position [get]
func (h *PositionHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one position by id.
//
// @Summary      Get a position
// @Tags         positions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Position ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /position/{id} [get]
func (h *PositionHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a position.
//
// @Summary      Update a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Position ID"
// @Param        body  body      positionRequest  true  "Position"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /position/{id} [put]
func (h *PositionHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a position. Toggles the position between ACTIVE and INACTIVE.
//
// @Summary      Change position status
// @Tags         positions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Position ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /position/{id}/status [put]
func (h *PositionHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a position.
//
// @Summary      Delete a position
// @Tags         positions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Position ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /position/{id} [delete]
func (h *PositionHandler) Delete(c echo.Context) error { return h.remove(c) }
