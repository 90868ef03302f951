package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GetErrorMsg translates binding validation errors into user-facing text.
func GetErrorMsg(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s is required", field))
			case "email":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be a valid email address", field))
			case "min":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be at least %s characters", field, param))
			case "max":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be at most %s characters", field, param))
			case "len":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be exactly %s characters", field, param))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s failed validation (%s)", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "Invalid request body"
}
