package requests

// CreateEmergencyCase registers a new ED visit. Either PatientID or the
// inline Patient block must be present; the inline block triggers quick
// registration through the patient service.
type CreateEmergencyCase struct {
	PatientID      string         `json:"patient_id"`
	Patient        *InlinePatient `json:"patient,omitempty"`
	TriageLevel    string         `json:"triage_level" validate:"required,triage_level"`
	ChiefComplaint string         `json:"chief_complaint" validate:"required,max=500"`
}

// InlinePatient carries the minimal fields for walk-ins without a prior
// patient identity.
type InlinePatient struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	Gender      string `json:"gender" validate:"max=20"`
	BirthDate   string `json:"birth_date" validate:"max=10"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
}

type UpdateTriage struct {
	TriageLevel string `json:"triage_level" validate:"required,triage_level"`
	Reason      string `json:"reason" validate:"max=500"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,ed_status"`
}

type UpdateVitals struct {
	BloodPressure    string  `json:"blood_pressure" validate:"max=20"`
	Pulse            int     `json:"pulse" validate:"min=0,max=400"`
	Temperature      float64 `json:"temperature" validate:"min=0,max=50"`
	RespiratoryRate  int     `json:"respiratory_rate" validate:"min=0,max=120"`
	OxygenSaturation int     `json:"oxygen_saturation" validate:"min=0,max=100"`
}

// UpdateEmergencyCase is the general field patch available to clinical
// staff before a case reaches a terminal status.
type UpdateEmergencyCase struct {
	TreatmentNotes string `json:"treatment_notes" validate:"max=2000"`
	Diagnosis      string `json:"diagnosis" validate:"max=2000"`
	AssignedDoctor string `json:"assigned_doctor" validate:"max=50"`
	AssignedNurse  string `json:"assigned_nurse" validate:"max=50"`
}

type EmergencyCaseFilter struct {
	Status      string
	TriageLevel string
	Page        int
	PageSize    int
}
