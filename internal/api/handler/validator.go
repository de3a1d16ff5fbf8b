package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

var (
	deptCodeRe = regexp.MustCompile(`^[a-zA-Z]{2}0000[0-9]{2}$`)
	moneyRe    = regexp.MustCompile(`^\d+(\.\d{2})$`)
	letterRe   = regexp.MustCompile(`[a-zA-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*]`)
)

// dateLayouts are the ISO 8601 forms accepted for date fields.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldLabel)

	_ = v.RegisterValidation("deptcode", matches(deptCodeRe))
	_ = v.RegisterValidation("money", matches(moneyRe))
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return letterRe.MatchString(s) && digitRe.MatchString(s) && specialRe.MatchString(s)
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(dateOrder, absenceRequest{})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Only the first violated
// rule is reported.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return domain.Invalid(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of '%s'", field, strings.Join(strings.Fields(fe.Param()), "', '"))
	case "deptcode":
		return field + " must be in the format: two letters, four zeros, and two numbers"
	case "money":
		return field + " must be in the format '38800.00'"
	case "password":
		return field + " must contain at least one letter, one number, and one special character"
	case "isodate":
		return field + " must be a valid ISO 8601 date"
	case "gtdate":
		return fmt.Sprintf("%s must be later than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// fieldLabel names fields by their label tag, falling back to the JSON name.
func fieldLabel(f reflect.StructField) string {
	if l := f.Tag.Get("label"); l != "" {
		return l
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// dateOrder rejects absences whose end date is not after the start date.
// It only runs once both dates passed their field rules.
func dateOrder(sl validator.StructLevel) {
	req := sl.Current().Interface().(absenceRequest)
	start, err1 := parseDate(req.StartDate)
	end, err2 := parseDate(req.EndDate)
	if err1 != nil || err2 != nil {
		return
	}
	if !end.After(start) {
		sl.ReportError(req.EndDate, "End Date", "EndDate", "gtdate", "Start Date")
	}
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
