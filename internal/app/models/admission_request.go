package models

// AdmissionRequest is the downstream message produced when a case is
// dispositioned to admit. This service is a one-way, fire-and-forget
// producer; the bed management system consumes the queue.
type AdmissionRequest struct {
	CaseID              string `json:"case_id"`
	CaseNumber          string `json:"case_number"`
	PatientID           string `json:"patient_id"`
	RequestingDoctor    string `json:"requesting_doctor"`
	Reason              string `json:"reason"`
	Priority            string `json:"priority"`
	RecommendedWardType string `json:"recommended_ward_type"`
	Status              string `json:"status"`
	Notes               string `json:"notes"`
}
