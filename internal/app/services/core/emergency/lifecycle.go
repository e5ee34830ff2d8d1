package emergency

import (
	"fmt"

	"medicore-service/internal/pkg/constvars"
)

// IsDeclaredStatus reports enum membership. Ordering between statuses is
// deliberately not enforced: staff-driven workflows are trusted to drive
// progression, and only the triage-recorded event moves a case implicitly
// (registered to triage).
func IsDeclaredStatus(status string) bool {
	switch status {
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

// DispositionForStatus maps a terminal status to the disposition recorded
// the first time the case enters it.
func DispositionForStatus(status string) (string, bool) {
	switch status {
	case constvars.CaseStatusAdmitted:
		return constvars.DispositionAdmit, true
	case constvars.CaseStatusDischarged:
		return constvars.DispositionDischarge, true
	case constvars.CaseStatusTransferred:
		return constvars.DispositionTransfer, true
	}
	return "", false
}

// RecommendedWardType derives the admission ward recommendation from the
// triage level at admission time.
func RecommendedWardType(triageLevel string) string {
	if triageLevel == constvars.TriageLevelCritical {
		return constvars.AdmissionWardTypeICU
	}
	return constvars.AdmissionWardTypeGeneral
}

func formatAdmissionNote(triageLevel string) string {
	return fmt.Sprintf(constvars.AdmissionTriageNoteFormat, triageLevel)
}
