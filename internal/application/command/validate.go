package command

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("stakeholder", func(fl validator.FieldLevel) bool {
		return aggregate.StakeholderType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("metric", func(fl validator.FieldLevel) bool {
		return aggregate.MetricKind(fl.Field().String()).IsValid()
	})

	return v
}

// validateCommand runs struct validation and maps failures to a
// VALIDATION_ERROR carrying per-field details
func validateCommand(cmd interface{}) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}

	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewValidationError(err.Error())
	}

	details := make([]FieldError, 0, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		names = append(names, fe.Field())
	}

	msg := fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
	return errors.NewValidationError(msg).WithDetails(details)
}
