package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type UserHandler struct {
	resource[domain.User, ports.UserInput]
}

func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{resource[domain.User, ports.UserInput]{
		svc:        svc,
		singular:   "user",
		plural:     "users",
		bind:       bindInput[userRequest, ports.UserInput],
		bindUpdate: bindInput[userUpdateRequest, ports.UserInput],
		status:     toggleStatus,
	}}
}

// Create stores a new user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User ID"
// @Param        body  body      userUpdateRequest  true  "User"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a user. Toggles the user between ACTIVE and INACTIVE.
//
// @Summary      Change user status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /user/{id}/status [put]
func (h *UserHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error { return h.remove(c) }
