package utils

import (
	"medicore-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("triage_level", validateTriageLevel)
	validate.RegisterValidation("ed_status", validateCaseStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTriageLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.TriageLevelCritical,
		constvars.TriageLevelUrgent,
		constvars.TriageLevelLessUrgent,
		constvars.TriageLevelNonUrgent:
		return true
	}
	return false
}

func validateCaseStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.CaseStatusRegistered,
		constvars.CaseStatusTriage,
		constvars.CaseStatusInTreatment,
		constvars.CaseStatusObservation,
		constvars.CaseStatusAdmitted,
		constvars.CaseStatusDischarged,
		constvars.CaseStatusTransferred:
		return true
	}
	return false
}
