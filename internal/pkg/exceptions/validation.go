package exceptions

import (
	"medicore-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required":     "is required",
	"triage_level": "must be one of critical, urgent, less-urgent, non-urgent",
	"ed_status":    "must be a declared emergency case status",
	"max":          "is too long",
	"min":          "is too short",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		if fieldName == "chiefcomplaint" && firstErr.Tag() == "required" {
			return constvars.ErrClientMissingChiefComplaint
		}
		message, ok := validationMessages[firstErr.Tag()]
		if !ok {
			message = "is invalid"
		}
		return fieldName + " " + message
	}
	return constvars.ErrClientCannotProcessRequest
}
