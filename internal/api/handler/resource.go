package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/api/metrics"
	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type messageResponse struct {
	Message string `json:"message"`
}

// resource drives the six endpoints every managed resource exposes. The
// singular name is the JSON key for one record and the plural the key for a
// list.
type resource[T, In any] struct {
	svc      ports.ResourceService[T, In]
	singular string
	plural   string
	bind     func(echo.Context) (In, error)

	// bindUpdate overrides bind for updates when set.
	bindUpdate func(echo.Context) (In, error)
	status     func(echo.Context) (domain.Status, error)
}

// toggleStatus is the status source for ACTIVE/INACTIVE resources: the
// service flips the current value.
func toggleStatus(echo.Context) (domain.Status, error) { return "", nil }

// bindStatus reads an explicit {"status": ...} body for review workflows.
func bindStatus(c echo.Context) (domain.Status, error) {
	return bindInput[statusRequest, domain.Status](c)
}

func (r resource[T, In]) create(c echo.Context) error {
	in, err := r.bind(c)
	if err != nil {
		return err
	}
	v, err := r.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	r.written("create")
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Created " + r.singular + " successfully",
		r.singular: v,
	})
}

func (r resource[T, In]) list(c echo.Context) error {
	items, err := r.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{r.plural: items})
}

func (r resource[T, In]) get(c echo.Context) error {
	v, err := r.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{r.singular: v})
}

func (r resource[T, In]) update(c echo.Context) error {
	bind := r.bind
	if r.bindUpdate != nil {
		bind = r.bindUpdate
	}
	in, err := bind(c)
	if err != nil {
		return err
	}
	v, err := r.svc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	r.written("update")
	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Updated " + r.singular + " successfully",
		r.singular: v,
	})
}

func (r resource[T, In]) changeStatus(c echo.Context) error {
	status, err := r.status(c)
	if err != nil {
		return err
	}
	v, err := r.svc.ChangeStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return err
	}
	r.written("status")
	base := any(v).(interface{ Base() *domain.Record }).Base()
	return c.JSON(http.StatusOK, messageResponse{Message: "Status change to " + string(base.Status)})
}

func (r resource[T, In]) remove(c echo.Context) error {
	if err := r.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	r.written("delete")
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted " + r.singular + " successfully"})
}

func (r resource[T, In]) written(op string) {
	metrics.RecordsWrittenTotal.WithLabelValues(r.singular, op).Inc()
}
