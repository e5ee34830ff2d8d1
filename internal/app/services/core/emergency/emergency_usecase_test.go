package emergency

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCaseRepository struct {
	cases       map[string]*models.EmergencyCase
	nextID      int
	activeCalls int
}

func newFakeCaseRepository() *fakeCaseRepository {
	return &fakeCaseRepository{cases: make(map[string]*models.EmergencyCase)}
}

func (f *fakeCaseRepository) CreateCase(_ context.Context, caseModel *models.EmergencyCase) (string, error) {
	f.nextID++
	id := fmt.Sprintf("case-%d", f.nextID)
	stored := *caseModel
	stored.ID = id
	f.cases[id] = &stored
	return id, nil
}

func (f *fakeCaseRepository) FindByID(_ context.Context, caseID string) (*models.EmergencyCase, error) {
	stored, ok := f.cases[caseID]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeCaseRepository) FindAll(_ context.Context, _ *requests.EmergencyCaseFilter) ([]models.EmergencyCase, int, error) {
	var all []models.EmergencyCase
	for _, stored := range f.cases {
		all = append(all, *stored)
	}
	return all, len(all), nil
}

func (f *fakeCaseRepository) FindActive(_ context.Context) ([]models.EmergencyCase, error) {
	f.activeCalls++
	var active []models.EmergencyCase
	for _, stored := range f.cases {
		if IsActiveStatus(stored.Status) {
			active = append(active, *stored)
		}
	}
	return active, nil
}

func (f *fakeCaseRepository) FindArrivedBetween(_ context.Context, from, to time.Time) ([]models.EmergencyCase, error) {
	var arrived []models.EmergencyCase
	for _, stored := range f.cases {
		if !stored.ArrivalTime.Before(from) && stored.ArrivalTime.Before(to) {
			arrived = append(arrived, *stored)
		}
	}
	return arrived, nil
}

func (f *fakeCaseRepository) UpdateFields(_ context.Context, caseID string, fields map[string]interface{}) error {
	stored, ok := f.cases[caseID]
	if !ok {
		return errors.New("case not found")
	}
	applyFields(stored, fields)
	return nil
}

func (f *fakeCaseRepository) AppendTriage(_ context.Context, caseID string, entry models.TriageHistoryEntry, fields map[string]interface{}) error {
	stored, ok := f.cases[caseID]
	if !ok {
		return errors.New("case not found")
	}
	stored.TriageHistory = append(stored.TriageHistory, entry)
	applyFields(stored, fields)
	return nil
}

func applyFields(stored *models.EmergencyCase, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "status":
			stored.Status = value.(string)
		case "triageLevel":
			stored.TriageLevel = value.(string)
		case "triageBy":
			stored.TriageBy = value.(string)
		case "triageTime":
			at := value.(time.Time)
			stored.TriageTime = &at
		case "treatmentStartTime":
			at := value.(time.Time)
			stored.TreatmentStartTime = &at
		case "treatmentEndTime":
			at := value.(time.Time)
			stored.TreatmentEndTime = &at
		case "dischargeTime":
			at := value.(time.Time)
			stored.DischargeTime = &at
		case "disposition":
			stored.Disposition = value.(string)
		case "vitals":
			stored.Vitals = value.(*models.VitalSigns)
		case "treatmentNotes":
			stored.TreatmentNotes = value.(string)
		case "diagnosis":
			stored.Diagnosis = value.(string)
		case "assignedDoctor":
			stored.AssignedDoctor = value.(string)
		case "assignedNurse":
			stored.AssignedNurse = value.(string)
		}
	}
}

type fakeSequenceRepository struct {
	sequence int
}

func (f *fakeSequenceRepository) NextCaseNumber(_ context.Context, at time.Time) (string, error) {
	f.sequence++
	return fmt.Sprintf(constvars.CaseNumberSequenceFormat, constvars.CaseNumberPrefix+at.Format(constvars.CaseNumberDateLayout), f.sequence), nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
	nextID   int
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{patients: make(map[string]*models.Patient)}
}

func (f *fakePatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	f.nextID++
	id := fmt.Sprintf("patient-%d", f.nextID)
	stored := *patient
	stored.ID = id
	f.patients[id] = &stored
	return id, nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	stored, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

type fakeStaffRepository struct {
	staff map[string]*models.Staff
}

func newFakeStaffRepository() *fakeStaffRepository {
	return &fakeStaffRepository{staff: make(map[string]*models.Staff)}
}

func (f *fakeStaffRepository) add(staffID, firstName, lastName string) {
	f.staff[staffID] = &models.Staff{ID: staffID, FirstName: firstName, LastName: lastName}
}

func (f *fakeStaffRepository) FindByID(_ context.Context, staffID string) (*models.Staff, error) {
	stored, ok := f.staff[staffID]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

type fakeAdmissionQueue struct {
	requests []*models.AdmissionRequest
	err      error
}

func (f *fakeAdmissionQueue) Enqueue(_ context.Context, request *models.AdmissionRequest) error {
	if f.err != nil {
		return f.err
	}
	f.requests = append(f.requests, request)
	return nil
}

type fakeEventPublisher struct {
	events []contracts.CaseEvent
	err    error
}

func (f *fakeEventPublisher) Publish(_ context.Context, event contracts.CaseEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeRedisRepository struct {
	values map[string]string
	getErr error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(payload)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

type usecaseFixture struct {
	usecase        contracts.EmergencyUsecase
	caseRepository *fakeCaseRepository
	patients       *fakePatientRepository
	staff          *fakeStaffRepository
	admissionQueue *fakeAdmissionQueue
	publisher      *fakeEventPublisher
	redis          *fakeRedisRepository
}

func newUsecaseFixture() *usecaseFixture {
	caseRepository := newFakeCaseRepository()
	patients := newFakePatientRepository()
	staffRepository := newFakeStaffRepository()
	admissionQueue := &fakeAdmissionQueue{}
	publisher := &fakeEventPublisher{}
	redisRepository := newFakeRedisRepository()

	usecase := NewEmergencyUsecase(
		caseRepository,
		&fakeSequenceRepository{},
		patients,
		staffRepository,
		admissionQueue,
		publisher,
		redisRepository,
		zap.NewNop(),
	)

	return &usecaseFixture{
		usecase:        usecase,
		caseRepository: caseRepository,
		patients:       patients,
		staff:          staffRepository,
		admissionQueue: admissionQueue,
		publisher:      publisher,
		redis:          redisRepository,
	}
}

func staffContext(staffID string) context.Context {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "MDCR_SVC_test")
	return context.WithValue(ctx, constvars.CONTEXT_STAFF_ID_KEY, staffID)
}

func TestCreateCase_RegistersWithDefaults(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	response, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID:      "patient-known",
		TriageLevel:    constvars.TriageLevelUrgent,
		ChiefComplaint: "chest pain",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.CaseStatusRegistered, response.Status)
	assert.Equal(t, constvars.TriageLevelUrgent, response.TriageLevel)
	assert.Empty(t, response.TriageHistory)
	assert.Empty(t, response.Disposition)
	assert.Equal(t, "nurse-1", response.CreatedBy)
	assert.Equal(t, fmt.Sprintf("%s%s0001", constvars.CaseNumberPrefix, time.Now().Format(constvars.CaseNumberDateLayout)), response.CaseNumber)

	require.Len(t, fixture.publisher.events, 1)
	assert.Equal(t, constvars.EmergencyEventNew, fixture.publisher.events[0].Event)
}

func TestCreateCase_SequenceIncrementsPerCase(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	first, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "a",
	})
	require.NoError(t, err)
	second, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p2", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "b",
	})
	require.NoError(t, err)

	date := time.Now().Format(constvars.CaseNumberDateLayout)
	assert.Equal(t, "ER"+date+"0001", first.CaseNumber)
	assert.Equal(t, "ER"+date+"0002", second.CaseNumber)
}

func TestCreateCase_InvalidTriageLevel(t *testing.T) {
	fixture := newUsecaseFixture()

	_, err := fixture.usecase.CreateCase(staffContext("nurse-1"), &requests.CreateEmergencyCase{
		PatientID:      "patient-known",
		TriageLevel:    "resuscitation",
		ChiefComplaint: "chest pain",
	})

	assert.Error(t, err)
	assert.Empty(t, fixture.publisher.events)
}

func TestCreateCase_RequiresPatientReferenceOrDetails(t *testing.T) {
	fixture := newUsecaseFixture()

	_, err := fixture.usecase.CreateCase(staffContext("nurse-1"), &requests.CreateEmergencyCase{
		TriageLevel:    constvars.TriageLevelUrgent,
		ChiefComplaint: "chest pain",
	})

	assert.Error(t, err)
}

func TestCreateCase_QuickRegistrationCreatesPatient(t *testing.T) {
	fixture := newUsecaseFixture()

	response, err := fixture.usecase.CreateCase(staffContext("nurse-1"), &requests.CreateEmergencyCase{
		Patient:        &requests.InlinePatient{FirstName: "Jordan", LastName: "Lee"},
		TriageLevel:    constvars.TriageLevelCritical,
		ChiefComplaint: "unresponsive",
	})

	require.NoError(t, err)
	assert.Equal(t, "patient-1", response.PatientID)
	assert.Equal(t, "Jordan Lee", response.PatientName)
}

func TestUpdateTriage_AppendsHistoryAndMovesRegisteredToTriage(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-2")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelNonUrgent, ChiefComplaint: "sprain",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateTriage(ctx, created.ID, &requests.UpdateTriage{
		TriageLevel: constvars.TriageLevelUrgent,
		Reason:      "pain escalating",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.CaseStatusTriage, response.Status)
	assert.Equal(t, constvars.TriageLevelUrgent, response.TriageLevel)
	assert.Equal(t, "nurse-2", response.TriageBy)
	require.NotNil(t, response.TriageTime)
	require.Len(t, response.TriageHistory, 1)
	assert.Equal(t, constvars.TriageLevelUrgent, response.TriageHistory[0].Level)
	assert.Equal(t, "nurse-2", response.TriageHistory[0].ChangedBy)
	assert.Equal(t, "pain escalating", response.TriageHistory[0].Reason)
}

func TestUpdateTriage_HistoryGrowsPerUpdate(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-2")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelNonUrgent, ChiefComplaint: "sprain",
	})
	require.NoError(t, err)

	levels := []string{
		constvars.TriageLevelLessUrgent,
		constvars.TriageLevelUrgent,
		constvars.TriageLevelCritical,
	}
	for _, level := range levels {
		_, err := fixture.usecase.UpdateTriage(ctx, created.ID, &requests.UpdateTriage{TriageLevel: level})
		require.NoError(t, err)
	}

	stored, err := fixture.caseRepository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, stored.TriageHistory, len(levels))
	assert.Equal(t, constvars.TriageLevelCritical, stored.TriageLevel)
}

func TestUpdateTriage_KeepsNonRegisteredStatus(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-2")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fall",
	})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusInTreatment})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateTriage(ctx, created.ID, &requests.UpdateTriage{TriageLevel: constvars.TriageLevelCritical})
	require.NoError(t, err)
	assert.Equal(t, constvars.CaseStatusInTreatment, response.Status)
}

func TestUpdateTriage_UnknownCase(t *testing.T) {
	fixture := newUsecaseFixture()

	_, err := fixture.usecase.UpdateTriage(staffContext("nurse-2"), "missing", &requests.UpdateTriage{
		TriageLevel: constvars.TriageLevelUrgent,
	})

	assert.Error(t, err)
}

func TestUpdateStatus_TreatmentStartSetOnce(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	first, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusInTreatment})
	require.NoError(t, err)
	require.NotNil(t, first.TreatmentStartTime)
	startedAt := *first.TreatmentStartTime

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusObservation})
	require.NoError(t, err)

	second, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusInTreatment})
	require.NoError(t, err)
	require.NotNil(t, second.TreatmentStartTime)
	assert.Equal(t, startedAt, *second.TreatmentStartTime)
}

func TestUpdateStatus_DischargeRecordsDispositionOnce(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelLessUrgent, ChiefComplaint: "cut",
	})
	require.NoError(t, err)

	first, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusDischarged})
	require.NoError(t, err)
	assert.Equal(t, constvars.DispositionDischarge, first.Disposition)
	require.NotNil(t, first.TreatmentEndTime)
	require.NotNil(t, first.DischargeTime)
	endedAt := *first.TreatmentEndTime
	dischargedAt := *first.DischargeTime

	second, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusDischarged})
	require.NoError(t, err)
	assert.Equal(t, endedAt, *second.TreatmentEndTime)
	assert.Equal(t, dischargedAt, *second.DischargeTime)
	assert.Equal(t, constvars.DispositionDischarge, second.Disposition)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: "waiting"})
	assert.Error(t, err)
}

func TestUpdateStatus_AdmittedEnqueuesAdmissionRequest(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-9")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelCritical, ChiefComplaint: "stroke symptoms",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusAdmitted})
	require.NoError(t, err)
	assert.Equal(t, constvars.DispositionAdmit, response.Disposition)

	require.Len(t, fixture.admissionQueue.requests, 1)
	admission := fixture.admissionQueue.requests[0]
	assert.Equal(t, created.ID, admission.CaseID)
	assert.Equal(t, created.CaseNumber, admission.CaseNumber)
	assert.Equal(t, "p1", admission.PatientID)
	assert.Equal(t, "doctor-9", admission.RequestingDoctor)
	assert.Equal(t, "stroke symptoms", admission.Reason)
	assert.Equal(t, constvars.AdmissionPriorityEmergency, admission.Priority)
	assert.Equal(t, constvars.AdmissionWardTypeICU, admission.RecommendedWardType)
	assert.Equal(t, constvars.AdmissionStatusPending, admission.Status)
}

func TestUpdateStatus_AdmissionEnqueueFailureDoesNotFailRequest(t *testing.T) {
	fixture := newUsecaseFixture()
	fixture.admissionQueue.err = errors.New("broker unavailable")
	ctx := staffContext("doctor-9")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "sepsis",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusAdmitted})
	require.NoError(t, err)
	assert.Equal(t, constvars.CaseStatusAdmitted, response.Status)

	stored, err := fixture.caseRepository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, constvars.CaseStatusAdmitted, stored.Status)
}

func TestUpdateStatus_PublishesPreviousAndNewStatus(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusInTreatment})
	require.NoError(t, err)

	event := fixture.publisher.events[len(fixture.publisher.events)-1]
	assert.Equal(t, constvars.EmergencyEventStatus, event.Event)
	assert.Equal(t, constvars.CaseStatusRegistered, event.PreviousStatus)
	assert.Equal(t, constvars.CaseStatusInTreatment, event.NewStatus)
}

func TestUpdateStatus_PublishFailureDoesNotFailRequest(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	fixture.publisher.err = errors.New("channel gone")

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusInTreatment})
	assert.NoError(t, err)
}

func TestUpdateCase_RejectedOnceTerminal(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateStatus(ctx, created.ID, &requests.UpdateStatus{Status: constvars.CaseStatusDischarged})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateCase(ctx, created.ID, &requests.UpdateEmergencyCase{Diagnosis: "late note"})
	assert.Error(t, err)
}

func TestUpdateCase_PatchesClinicalFields(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("doctor-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateCase(ctx, created.ID, &requests.UpdateEmergencyCase{
		Diagnosis:      "influenza",
		AssignedDoctor: "doctor-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "influenza", response.Diagnosis)
	assert.Equal(t, "doctor-7", response.AssignedDoctor)

	stored, err := fixture.caseRepository.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "influenza", stored.Diagnosis)
}

func TestUpdateVitals_RecordsMeasurementAndRecorder(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-5")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateVitals(ctx, created.ID, &requests.UpdateVitals{
		BloodPressure:    "120/80",
		Pulse:            88,
		Temperature:      38.5,
		RespiratoryRate:  18,
		OxygenSaturation: 97,
	})

	require.NoError(t, err)
	require.NotNil(t, response.Vitals)
	assert.Equal(t, "120/80", response.Vitals.BloodPressure)
	assert.Equal(t, "nurse-5", response.Vitals.RecordedBy)
	assert.False(t, response.Vitals.RecordedAt.IsZero())

	event := fixture.publisher.events[len(fixture.publisher.events)-1]
	assert.Equal(t, constvars.EmergencyEventVitals, event.Event)
}

func TestTriageQueue_OrdersActiveCases(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	nonUrgent, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelNonUrgent, ChiefComplaint: "rash",
	})
	require.NoError(t, err)
	critical, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p2", TriageLevel: constvars.TriageLevelCritical, ChiefComplaint: "cardiac arrest",
	})
	require.NoError(t, err)
	discharged, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p3", TriageLevel: constvars.TriageLevelCritical, ChiefComplaint: "resolved",
	})
	require.NoError(t, err)
	_, err = fixture.usecase.UpdateStatus(ctx, discharged.ID, &requests.UpdateStatus{Status: constvars.CaseStatusDischarged})
	require.NoError(t, err)

	queue, err := fixture.usecase.TriageQueue(ctx)
	require.NoError(t, err)

	require.Len(t, queue, 2)
	assert.Equal(t, critical.ID, queue[0].ID)
	assert.Equal(t, nonUrgent.ID, queue[1].ID)
}

func TestLiveBoard_IncludesWaitingTime(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	_, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fracture",
	})
	require.NoError(t, err)

	board, err := fixture.usecase.LiveBoard(ctx)
	require.NoError(t, err)

	require.Len(t, board, 1)
	assert.Equal(t, "0m", board[0].WaitingTime)
}

func TestDashboard_CountsAndCaches(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	_, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelCritical, ChiefComplaint: "trauma",
	})
	require.NoError(t, err)
	_, err = fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p2", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "burn",
	})
	require.NoError(t, err)

	dashboard, err := fixture.usecase.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.ActiveCases)
	assert.Equal(t, 2, dashboard.ArrivedToday)
	assert.Equal(t, 1, dashboard.TodayByTriage[constvars.TriageLevelCritical])
	assert.Equal(t, 1, dashboard.TodayByTriage[constvars.TriageLevelUrgent])

	activeCallsAfterFirst := fixture.caseRepository.activeCalls

	cached, err := fixture.usecase.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.ActiveCases, cached.ActiveCases)
	assert.Equal(t, activeCallsAfterFirst, fixture.caseRepository.activeCalls)
}

func TestFindCaseByID_NotFound(t *testing.T) {
	fixture := newUsecaseFixture()

	_, err := fixture.usecase.FindCaseByID(staffContext("nurse-1"), "missing")
	assert.Error(t, err)
}

func TestCreateCase_EventCarriesPatientDisplayName(t *testing.T) {
	fixture := newUsecaseFixture()

	_, err := fixture.usecase.CreateCase(staffContext("nurse-1"), &requests.CreateEmergencyCase{
		Patient:        &requests.InlinePatient{FirstName: "Jordan", LastName: "Lee"},
		TriageLevel:    constvars.TriageLevelCritical,
		ChiefComplaint: "unresponsive",
	})

	require.NoError(t, err)
	require.Len(t, fixture.publisher.events, 1)
	assert.Equal(t, "Jordan Lee", fixture.publisher.events[0].Case.PatientName)
}

func TestUpdateCase_JoinsStaffDisplayNames(t *testing.T) {
	fixture := newUsecaseFixture()
	fixture.staff.add("doctor-9", "Asha", "Rahman")
	fixture.staff.add("nurse-5", "Mei", "Tan")
	ctx := staffContext("nurse-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fracture",
	})
	require.NoError(t, err)

	response, err := fixture.usecase.UpdateCase(ctx, created.ID, &requests.UpdateEmergencyCase{
		AssignedDoctor: "doctor-9",
		AssignedNurse:  "nurse-5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rahman", response.AssignedDoctorName)
	assert.Equal(t, "Mei Tan", response.AssignedNurseName)
}

func TestUpdateTriage_EventCarriesTriageStaffName(t *testing.T) {
	fixture := newUsecaseFixture()
	fixture.staff.add("nurse-1", "Dewi", "Putri")
	ctx := staffContext("nurse-1")

	created, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelUrgent, ChiefComplaint: "fever",
	})
	require.NoError(t, err)

	_, err = fixture.usecase.UpdateTriage(ctx, created.ID, &requests.UpdateTriage{
		TriageLevel: constvars.TriageLevelCritical,
		Reason:      "deteriorating",
	})
	require.NoError(t, err)

	event := fixture.publisher.events[len(fixture.publisher.events)-1]
	assert.Equal(t, constvars.EmergencyEventTriage, event.Event)
	assert.Equal(t, "Dewi Putri", event.Case.TriageByName)
	assert.Equal(t, constvars.TriageLevelCritical, event.Case.TriageLevel)
}

func TestDashboard_CacheReadFailureFallsBackToStore(t *testing.T) {
	fixture := newUsecaseFixture()
	ctx := staffContext("nurse-1")

	_, err := fixture.usecase.CreateCase(ctx, &requests.CreateEmergencyCase{
		PatientID: "p1", TriageLevel: constvars.TriageLevelCritical, ChiefComplaint: "trauma",
	})
	require.NoError(t, err)

	fixture.redis.getErr = errors.New("connection refused")

	dashboard, err := fixture.usecase.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.ActiveCases)
	assert.Equal(t, 1, dashboard.ArrivedToday)
}
