package constvars

// Triage levels in clinical urgency order.
const (
	TriageLevelCritical   = "critical"
	TriageLevelUrgent     = "urgent"
	TriageLevelLessUrgent = "less-urgent"
	TriageLevelNonUrgent  = "non-urgent"
)

// Emergency case statuses.
const (
	CaseStatusRegistered  = "registered"
	CaseStatusTriage      = "triage"
	CaseStatusInTreatment = "in-treatment"
	CaseStatusObservation = "observation"
	CaseStatusAdmitted    = "admitted"
	CaseStatusDischarged  = "discharged"
	CaseStatusTransferred = "transferred"
)

// Dispositions set when a case reaches a terminal status.
const (
	DispositionDischarge = "discharge"
	DispositionAdmit     = "admit"
	DispositionTransfer  = "transfer"
	DispositionLeftAMA   = "left-ama"
	DispositionDeceased  = "deceased"
)

// Admission request fields derived on disposition=admit.
const (
	AdmissionPriorityEmergency  = "emergency"
	AdmissionStatusPending      = "pending"
	AdmissionWardTypeICU        = "icu"
	AdmissionWardTypeGeneral    = "general"
	AdmissionDefaultReason      = "Emergency admission"
	AdmissionTriageNoteFormat   = "ED triage level at admission: %s"
	AdmissionRequestQueueName   = "admission_request_queue"
	AdmissionRequestDLQueueName = "admission_request_dlq"
)

// Real-time broadcast channel and event tags.
const (
	EmergencyRoomChannel = "emergency-room"

	EmergencyEventNew    = "emergency:new"
	EmergencyEventTriage = "emergency:triage"
	EmergencyEventStatus = "emergency:status"
	EmergencyEventVitals = "emergency:vitals"
)

// Case number format: ER + YYYYMMDD + zero-padded daily sequence.
const (
	CaseNumberPrefix         = "ER"
	CaseNumberDateLayout     = "20060102"
	CaseNumberSequenceFormat = "%s%04d"
)

const (
	MongoCollectionEmergencyCases = "emergency_cases"
	MongoCollectionPatients       = "patients"
	MongoCollectionStaff          = "staff"
	MongoCollectionCounters       = "counters"
)

const (
	RedisKeyEmergencyDashboard = "emergency:dashboard:today"
)

const (
	EndpointEmergencyCases = "/emergency/cases"
)
