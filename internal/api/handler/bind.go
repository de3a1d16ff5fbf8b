package handler

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

var errInvalidPayload = domain.Invalid("invalid payload")

// schema is implemented by request structs that normalize into a service input.
type schema[In any] interface {
	input() In
}

// bindInput decodes, trims and validates a request of type R, then returns
// its normalized input.
func bindInput[R any, In any, P interface {
	*R
	schema[In]
}](c echo.Context) (In, error) {
	var zero In
	req := new(R)
	if err := decode(c, req); err != nil {
		return zero, err
	}
	if err := c.Validate(req); err != nil {
		return zero, err
	}
	return P(req).input(), nil
}

// decode reads the JSON body strictly into dst. Unknown keys and type
// mismatches are reported with the offending field. An empty body decodes
// to the zero value so required rules produce the message. The body must
// hold exactly one JSON value.
func decode(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	switch err := dec.Decode(dst); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return decodeError(err, reflect.TypeOf(dst).Elem())
	default:
		if !errors.Is(dec.Decode(&json.RawMessage{}), io.EOF) {
			return errInvalidPayload
		}
	}
	trimStrings(reflect.ValueOf(dst).Elem())
	return nil
}

func decodeError(err error, t reflect.Type) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.Invalid(labelFor(t, typeErr.Field) + " must be a " + kindName(typeErr.Type))
	}
	if key, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return domain.Invalid(key + " is not allowed")
	}
	return errInvalidPayload
}

// labelFor returns the label of the field whose JSON name is name.
func labelFor(t reflect.Type, name string) string {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ","); jsonName == name {
			return fieldLabel(f)
		}
	}
	return name
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "number"
	}
}

// trimStrings trims every string field except passwords, which are hashed
// exactly as sent.
func trimStrings(v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ","); name == "password" {
			continue
		}
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
