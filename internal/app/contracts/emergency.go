package contracts

import (
	"context"
	"time"

	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
)

// EmergencyCaseRepository is the durable case store. Mutations on a single
// case document are atomic; the triage-history append and its companion
// field updates are applied in one write or not at all.
type EmergencyCaseRepository interface {
	CreateCase(ctx context.Context, caseModel *models.EmergencyCase) (caseID string, err error)
	FindByID(ctx context.Context, caseID string) (*models.EmergencyCase, error)
	FindAll(ctx context.Context, filter *requests.EmergencyCaseFilter) ([]models.EmergencyCase, int, error)
	FindActive(ctx context.Context) ([]models.EmergencyCase, error)
	FindArrivedBetween(ctx context.Context, from, to time.Time) ([]models.EmergencyCase, error)
	UpdateFields(ctx context.Context, caseID string, fields map[string]interface{}) error
	AppendTriage(ctx context.Context, caseID string, entry models.TriageHistoryEntry, fields map[string]interface{}) error
}

// SequenceRepository produces the daily-reset, zero-padded case number.
type SequenceRepository interface {
	NextCaseNumber(ctx context.Context, at time.Time) (string, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}

// StaffRepository is the read-only staff directory used for doctor, nurse,
// and triage-staff display-name joins.
type StaffRepository interface {
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
}

type EmergencyUsecase interface {
	CreateCase(ctx context.Context, request *requests.CreateEmergencyCase) (*responses.EmergencyCase, error)
	FindCaseByID(ctx context.Context, caseID string) (*responses.EmergencyCase, error)
	FindAllCases(ctx context.Context, filter *requests.EmergencyCaseFilter) ([]responses.EmergencyCase, *responses.Pagination, error)
	UpdateCase(ctx context.Context, caseID string, request *requests.UpdateEmergencyCase) (*responses.EmergencyCase, error)
	UpdateTriage(ctx context.Context, caseID string, request *requests.UpdateTriage) (*responses.EmergencyCase, error)
	UpdateStatus(ctx context.Context, caseID string, request *requests.UpdateStatus) (*responses.EmergencyCase, error)
	UpdateVitals(ctx context.Context, caseID string, request *requests.UpdateVitals) (*responses.EmergencyCase, error)
	TriageQueue(ctx context.Context) ([]responses.EmergencyCase, error)
	LiveBoard(ctx context.Context) ([]responses.LiveBoardRow, error)
	Dashboard(ctx context.Context) (*responses.EmergencyDashboard, error)
}
