// Package validator wraps go-playground struct validation with the custom
// rules the POS models need.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes one failed field so handlers can return the
// whole list in a 400 body.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// uuid.UUID is a value type, so `required` alone cannot reject the
	// zero uuid on cart lines and credit items.
	v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
	return v
}

// ValidateStruct returns one entry per failed field, nil when valid.
func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var failures []*ErrorResponse
	for _, fieldErr := range err.(validator.ValidationErrors) {
		failures = append(failures, &ErrorResponse{
			FailedField: fieldErr.StructNamespace(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Param(),
		})
	}
	return failures
}
