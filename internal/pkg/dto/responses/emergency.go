package responses

import (
	"time"

	"medicore-service/internal/app/models"
)

type EmergencyCase struct {
	ID                 string                      `json:"id"`
	CaseNumber         string                      `json:"case_number"`
	PatientID          string                      `json:"patient_id"`
	PatientName        string                      `json:"patient_name,omitempty"`
	ArrivalTime        time.Time                   `json:"arrival_time"`
	TriageLevel        string                      `json:"triage_level"`
	TriageTime         *time.Time                  `json:"triage_time,omitempty"`
	TriageBy           string                      `json:"triage_by,omitempty"`
	TriageByName       string                      `json:"triage_by_name,omitempty"`
	ChiefComplaint     string                      `json:"chief_complaint"`
	Status             string                      `json:"status"`
	Disposition        string                      `json:"disposition,omitempty"`
	Vitals             *models.VitalSigns          `json:"vitals,omitempty"`
	AssignedDoctor     string                      `json:"assigned_doctor,omitempty"`
	AssignedDoctorName string                      `json:"assigned_doctor_name,omitempty"`
	AssignedNurse      string                      `json:"assigned_nurse,omitempty"`
	AssignedNurseName  string                      `json:"assigned_nurse_name,omitempty"`
	TriageHistory      []models.TriageHistoryEntry `json:"triage_history"`
	TreatmentStartTime *time.Time                  `json:"treatment_start_time,omitempty"`
	TreatmentEndTime   *time.Time                  `json:"treatment_end_time,omitempty"`
	DischargeTime      *time.Time                  `json:"discharge_time,omitempty"`
	TreatmentNotes     string                      `json:"treatment_notes,omitempty"`
	Diagnosis          string                      `json:"diagnosis,omitempty"`
	AdmissionID        string                      `json:"admission_id,omitempty"`
	CreatedBy          string                      `json:"created_by"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// LiveBoardRow is one priority-ordered entry on the real-time board.
type LiveBoardRow struct {
	EmergencyCase
	WaitingTime string `json:"waiting_time"`
}

type EmergencyDashboard struct {
	ActiveCases   int            `json:"active_cases"`
	ArrivedToday  int            `json:"arrived_today"`
	TodayByTriage map[string]int `json:"today_by_triage"`
	GeneratedAt   time.Time      `json:"generated_at"`
}
