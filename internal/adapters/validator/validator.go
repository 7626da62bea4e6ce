// Package validator
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct returns a field -> message map, or nil when payload is valid.
func ValidateStruct(payload any) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			fieldName := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "eqfield":
				errors[fieldName] = fmt.Sprintf("The %s field must be equal to %s field.", fe.Field(), fe.Param())
			default:
				errors[fieldName] = fmt.Sprintf("The %s field is invalid.", fe.Field())
			}
		}
		return errors
	}

	errors["_"] = err.Error()
	return errors
}
