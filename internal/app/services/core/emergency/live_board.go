package emergency

import (
	"fmt"
	"time"

	"medicore-service/internal/app/models"
)

// WaitingDuration computes how long a case has waited for treatment. The
// value freezes at treatmentStartTime once treatment begins; before that it
// grows with the clock.
func WaitingDuration(caseModel *models.EmergencyCase, now time.Time) time.Duration {
	if caseModel.TreatmentStartTime != nil {
		return caseModel.TreatmentStartTime.Sub(caseModel.ArrivalTime)
	}
	return now.Sub(caseModel.ArrivalTime)
}

// FormatWaitingTime renders a duration as "{hours}h {minutes}m", dropping
// the hour part when zero. Minutes are truncated, not rounded.
func FormatWaitingTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
