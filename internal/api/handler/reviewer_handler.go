package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type ReviewerHandler struct {
	resource[domain.Reviewer, ports.ReviewerInput]
}

func NewReviewerHandler(svc ports.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{resource[domain.Reviewer, ports.ReviewerInput]{
		svc:      svc,
		singular: "reviewer",
		plural:   "reviewers",
		bind:     bindInput[reviewerRequest, ports.ReviewerInput],
		status:   toggleStatus,
	}}
}

// Create stores a new reviewer.
//
// @Summary      Create a reviewer
// @Tags         reviewers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewerRequest  true  "Reviewer"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reviewer [post]
func (h *ReviewerHandler) Create(c echo.Context) error { return h.create(c) }

// List returns every reviewer.
//
// @Summary      List reviewers
// @Tags         reviewers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviewer [get]
func (h *ReviewerHandler) List(c echo.Context) error { return h.list(c) }

// Get returns one reviewer by id.
//
// @Summary      Get a reviewer
// @Tags         reviewers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reviewer ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviewer/{id} [get]
func (h *ReviewerHandler) Get(c echo.Context) error { return h.get(c) }

// Update replaces the fields of a reviewer.
//
// @Summary      Update a reviewer
// @Tags         reviewers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Reviewer ID"
// @Param        body  body      reviewerRequest  true  "Reviewer"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reviewer/{id} [put]
func (h *ReviewerHandler) Update(c echo.Context) error { return h.update(c) }

// ChangeStatus updates the status of a reviewer. Toggles the reviewer between ACTIVE and INACTIVE.
//
// @Summary      Change reviewer status
// @Tags         reviewers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Reviewer ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reviewer/{id}/status [put]
func (h *ReviewerHandler) ChangeStatus(c echo.Context) error { return h.changeStatus(c) }

// Delete removes a reviewer.
//
// @Summary      Delete a reviewer
// @Tags         reviewers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reviewer ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviewer/{id} [delete]
func (h *ReviewerHandler) Delete(c echo.Context) error { return h.remove(c) }
