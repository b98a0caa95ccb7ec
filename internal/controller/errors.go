package controller

import (
	"github.com/go-playground/validator"
)

// Error Message for Validation Errors
type ErrMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return "This field is required alongside " + fe.Param()
	case "email":
		return "should be a valid email address"
	case "uuid":
		return "should be a valid uuid"
	case "min":
		return "should have min value of " + fe.Param()
	case "max":
		return "should have max value of " + fe.Param()
	case "len":
		return "should have length of " + fe.Param()
	case "lowercase":
		return "should be lower cased"
	case "uppercase":
		return "should be upper cased"
	case "rfc3339":
		return "field should be date" + fe.Param()
	}

	return "Unknown error"
}
