package constvars

const (
	ResponseUnknown = "unknown"

	CreateEmergencyCaseSuccess = "emergency case registered successfully"
	GetEmergencyCaseSuccess    = "get emergency case successfully"
	GetEmergencyCasesSuccess   = "get emergency cases successfully"
	UpdateEmergencyCaseSuccess = "emergency case updated successfully"
	UpdateTriageSuccess        = "triage level updated successfully"
	UpdateStatusSuccess        = "case status updated successfully"
	UpdateVitalsSuccess        = "vital signs recorded successfully"
	GetTriageQueueSuccess      = "get triage queue successfully"
	GetLiveBoardSuccess        = "get live board successfully"
	GetDashboardSuccess        = "get emergency dashboard successfully"
)
