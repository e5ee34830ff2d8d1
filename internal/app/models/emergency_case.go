package models

import (
	"time"

	"medicore-service/internal/pkg/constvars"
)

// EmergencyCase is one document per ED visit. Cases are never deleted;
// a terminal status closes them while keeping the record queryable.
type EmergencyCase struct {
	ID             string     `json:"id,omitempty" bson:"_id,omitempty"`
	CaseNumber     string     `json:"caseNumber" bson:"caseNumber"`
	PatientID      string     `json:"patientId" bson:"patientId"`
	ArrivalTime    time.Time  `json:"arrivalTime" bson:"arrivalTime"`
	TriageLevel    string     `json:"triageLevel" bson:"triageLevel"`
	TriageTime     *time.Time `json:"triageTime,omitempty" bson:"triageTime,omitempty"`
	TriageBy       string     `json:"triageBy,omitempty" bson:"triageBy,omitempty"`
	ChiefComplaint string     `json:"chiefComplaint" bson:"chiefComplaint"`
	Status         string     `json:"status" bson:"status"`
	Disposition    string     `json:"disposition,omitempty" bson:"disposition,omitempty"`

	Vitals *VitalSigns `json:"vitals,omitempty" bson:"vitals,omitempty"`

	AssignedDoctor string `json:"assignedDoctor,omitempty" bson:"assignedDoctor,omitempty"`
	AssignedNurse  string `json:"assignedNurse,omitempty" bson:"assignedNurse,omitempty"`

	// Append-only audit trail of triage decisions. Never rewritten or truncated.
	TriageHistory []TriageHistoryEntry `json:"triageHistory" bson:"triageHistory"`

	TreatmentStartTime *time.Time `json:"treatmentStartTime,omitempty" bson:"treatmentStartTime,omitempty"`
	TreatmentEndTime   *time.Time `json:"treatmentEndTime,omitempty" bson:"treatmentEndTime,omitempty"`
	DischargeTime      *time.Time `json:"dischargeTime,omitempty" bson:"dischargeTime,omitempty"`

	TreatmentNotes string `json:"treatmentNotes,omitempty" bson:"treatmentNotes,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`

	// Populated downstream if the admission request results in a bed assignment.
	AdmissionID string `json:"admissionId,omitempty" bson:"admissionId,omitempty"`

	CreatedBy string `json:"createdBy" bson:"createdBy"`

	TimeModel `bson:",inline"`
}

// VitalSigns is the latest snapshot, overwritten wholesale on each update.
type VitalSigns struct {
	BloodPressure    string    `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	Pulse            int       `json:"pulse,omitempty" bson:"pulse,omitempty"`
	Temperature      float64   `json:"temperature,omitempty" bson:"temperature,omitempty"`
	RespiratoryRate  int       `json:"respiratoryRate,omitempty" bson:"respiratoryRate,omitempty"`
	OxygenSaturation int       `json:"oxygenSaturation,omitempty" bson:"oxygenSaturation,omitempty"`
	RecordedAt       time.Time `json:"recordedAt" bson:"recordedAt"`
	RecordedBy       string    `json:"recordedBy,omitempty" bson:"recordedBy,omitempty"`
}

type TriageHistoryEntry struct {
	Level     string    `json:"level" bson:"level"`
	ChangedBy string    `json:"changedBy,omitempty" bson:"changedBy,omitempty"`
	ChangedAt time.Time `json:"changedAt" bson:"changedAt"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
}

// IsTerminalStatus reports whether the status closes the case.
func (c *EmergencyCase) IsTerminalStatus() bool {
	switch c.Status {
	case constvars.CaseStatusAdmitted, constvars.CaseStatusDischarged, constvars.CaseStatusTransferred:
		return true
	}
	return false
}
