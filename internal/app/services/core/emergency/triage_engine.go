package emergency

import (
	"sort"

	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
)

// Priority ranks. Unknown levels rank below non-urgent instead of erroring
// so the ordering stays total under data drift.
const (
	rankCritical   = 1
	rankUrgent     = 2
	rankLessUrgent = 3
	rankNonUrgent  = 4
	rankUnknown    = 5
)

// PriorityRank maps a triage level to its queue rank, lower is served first.
func PriorityRank(triageLevel string) int {
	switch triageLevel {
	case constvars.TriageLevelCritical:
		return rankCritical
	case constvars.TriageLevelUrgent:
		return rankUrgent
	case constvars.TriageLevelLessUrgent:
		return rankLessUrgent
	case constvars.TriageLevelNonUrgent:
		return rankNonUrgent
	}
	return rankUnknown
}

// IsActiveStatus reports whether a case still occupies the triage queue.
func IsActiveStatus(status string) bool {
	switch status {
	case constvars.CaseStatusRegistered,
		constvars.CaseStatusTriage,
		constvars.CaseStatusInTreatment,
		constvars.CaseStatusObservation:
		return true
	}
	return false
}

// SortByPriority orders cases by triage rank ascending, breaking ties on
// arrival time ascending. The ordering is recomputed on every read and
// never persisted, so it always reflects the latest triage level.
func SortByPriority(cases []models.EmergencyCase) {
	sort.SliceStable(cases, func(i, j int) bool {
		rankI := PriorityRank(cases[i].TriageLevel)
		rankJ := PriorityRank(cases[j].TriageLevel)
		if rankI != rankJ {
			return rankI < rankJ
		}
		return cases[i].ArrivalTime.Before(cases[j].ArrivalTime)
	})
}
