package emergency

import (
	"context"
	"time"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const dashboardCacheTTL = 15 * time.Second

type emergencyUsecase struct {
	CaseRepository     contracts.EmergencyCaseRepository
	SequenceRepository contracts.SequenceRepository
	PatientRepository  contracts.PatientRepository
	StaffRepository    contracts.StaffRepository
	AdmissionQueue     contracts.AdmissionRequestQueue
	EventPublisher     contracts.EventPublisher
	RedisRepository    contracts.RedisRepository
	Log                *zap.Logger
}

func NewEmergencyUsecase(
	caseRepository contracts.EmergencyCaseRepository,
	sequenceRepository contracts.SequenceRepository,
	patientRepository contracts.PatientRepository,
	staffRepository contracts.StaffRepository,
	admissionQueue contracts.AdmissionRequestQueue,
	eventPublisher contracts.EventPublisher,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.EmergencyUsecase {
	return &emergencyUsecase{
		CaseRepository:     caseRepository,
		SequenceRepository: sequenceRepository,
		PatientRepository:  patientRepository,
		StaffRepository:    staffRepository,
		AdmissionQueue:     admissionQueue,
		EventPublisher:     eventPublisher,
		RedisRepository:    redisRepository,
		Log:                logger,
	}
}

func (uc *emergencyUsecase) CreateCase(ctx context.Context, request *requests.CreateEmergencyCase) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	staffID, _ := ctx.Value(constvars.CONTEXT_STAFF_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.CreateCase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if PriorityRank(request.TriageLevel) == rankUnknown {
		return nil, exceptions.ErrInvalidTriageLevel(nil)
	}

	patientID := request.PatientID
	if patientID == "" {
		if request.Patient == nil {
			return nil, exceptions.ErrMissingPatientReference()
		}
		patient := &models.Patient{
			FirstName:   request.Patient.FirstName,
			LastName:    request.Patient.LastName,
			Gender:      request.Patient.Gender,
			BirthDate:   request.Patient.BirthDate,
			PhoneNumber: request.Patient.PhoneNumber,
		}
		patient.SetCreatedAtUpdatedAt()
		createdID, err := uc.PatientRepository.CreatePatient(ctx, patient)
		if err != nil {
			uc.Log.Error("emergencyUsecase.CreateCase quick registration failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		patientID = createdID
	}

	now := time.Now()
	caseNumber, err := uc.SequenceRepository.NextCaseNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	caseModel := &models.EmergencyCase{
		CaseNumber:     caseNumber,
		PatientID:      patientID,
		ArrivalTime:    now,
		TriageLevel:    request.TriageLevel,
		ChiefComplaint: request.ChiefComplaint,
		Status:         constvars.CaseStatusRegistered,
		TriageHistory:  []models.TriageHistoryEntry{},
		CreatedBy:      staffID,
	}
	caseModel.SetCreatedAtUpdatedAt()

	caseID, err := uc.CaseRepository.CreateCase(ctx, caseModel)
	if err != nil {
		return nil, err
	}
	caseModel.ID = caseID

	uc.Log.Info("emergencyUsecase.CreateCase succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
		zap.String(constvars.LoggingCaseNumberKey, caseNumber),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	response := uc.buildCaseResponse(ctx, caseModel)
	uc.publishEvent(ctx, constvars.EmergencyEventNew, response, "", "")
	return response, nil
}

func (uc *emergencyUsecase) FindCaseByID(ctx context.Context, caseID string) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.FindCaseByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	return uc.buildCaseResponse(ctx, caseModel), nil
}

func (uc *emergencyUsecase) FindAllCases(ctx context.Context, filter *requests.EmergencyCaseFilter) ([]responses.EmergencyCase, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.FindAllCases called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cases, total, err := uc.CaseRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	response := make([]responses.EmergencyCase, len(cases))
	for i := range cases {
		response[i] = *uc.buildCaseResponse(ctx, &cases[i])
	}

	pagination := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, constvars.EndpointEmergencyCases)

	uc.Log.Info("emergencyUsecase.FindAllCases succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, pagination, nil
}

func (uc *emergencyUsecase) UpdateCase(ctx context.Context, caseID string, request *requests.UpdateEmergencyCase) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.UpdateCase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	if caseModel.IsTerminalStatus() {
		return nil, exceptions.ErrCaseAlreadyClosed()
	}

	fields := map[string]interface{}{}
	if request.TreatmentNotes != "" {
		fields["treatmentNotes"] = request.TreatmentNotes
		caseModel.TreatmentNotes = request.TreatmentNotes
	}
	if request.Diagnosis != "" {
		fields["diagnosis"] = request.Diagnosis
		caseModel.Diagnosis = request.Diagnosis
	}
	if request.AssignedDoctor != "" {
		fields["assignedDoctor"] = request.AssignedDoctor
		caseModel.AssignedDoctor = request.AssignedDoctor
	}
	if request.AssignedNurse != "" {
		fields["assignedNurse"] = request.AssignedNurse
		caseModel.AssignedNurse = request.AssignedNurse
	}

	if len(fields) > 0 {
		if err := uc.CaseRepository.UpdateFields(ctx, caseID, fields); err != nil {
			return nil, err
		}
		caseModel.SetUpdatedAt()
	}
	return uc.buildCaseResponse(ctx, caseModel), nil
}

func (uc *emergencyUsecase) UpdateTriage(ctx context.Context, caseID string, request *requests.UpdateTriage) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	staffID, _ := ctx.Value(constvars.CONTEXT_STAFF_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.UpdateTriage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
		zap.String(constvars.LoggingTriageLevelKey, request.TriageLevel),
	)

	if PriorityRank(request.TriageLevel) == rankUnknown {
		return nil, exceptions.ErrInvalidTriageLevel(nil)
	}

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	now := time.Now()
	entry := models.TriageHistoryEntry{
		Level:     request.TriageLevel,
		ChangedBy: staffID,
		ChangedAt: now,
		Reason:    request.Reason,
	}

	fields := map[string]interface{}{
		"triageLevel": request.TriageLevel,
		"triageTime":  now,
		"triageBy":    staffID,
	}
	// The one implicit transition in the system: recording triage moves a
	// freshly registered case into triage.
	if caseModel.Status == constvars.CaseStatusRegistered {
		fields["status"] = constvars.CaseStatusTriage
		caseModel.Status = constvars.CaseStatusTriage
	}

	if err := uc.CaseRepository.AppendTriage(ctx, caseID, entry, fields); err != nil {
		return nil, err
	}

	caseModel.TriageLevel = request.TriageLevel
	caseModel.TriageTime = &now
	caseModel.TriageBy = staffID
	caseModel.TriageHistory = append(caseModel.TriageHistory, entry)
	caseModel.SetUpdatedAt()

	response := uc.buildCaseResponse(ctx, caseModel)
	uc.publishEvent(ctx, constvars.EmergencyEventTriage, response, "", "")
	return response, nil
}

func (uc *emergencyUsecase) UpdateStatus(ctx context.Context, caseID string, request *requests.UpdateStatus) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	staffID, _ := ctx.Value(constvars.CONTEXT_STAFF_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	if !IsDeclaredStatus(request.Status) {
		return nil, exceptions.ErrInvalidCaseStatus(nil)
	}

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	previousStatus := caseModel.Status
	now := time.Now()
	fields := map[string]interface{}{"status": request.Status}
	caseModel.Status = request.Status

	if request.Status == constvars.CaseStatusInTreatment && caseModel.TreatmentStartTime == nil {
		fields["treatmentStartTime"] = now
		caseModel.TreatmentStartTime = &now
	}

	if disposition, terminal := DispositionForStatus(request.Status); terminal {
		// Timestamps and disposition are write-once: re-issuing a terminal
		// status never overwrites what an earlier transition recorded.
		if caseModel.TreatmentEndTime == nil {
			fields["treatmentEndTime"] = now
			caseModel.TreatmentEndTime = &now
		}
		if caseModel.Disposition == "" {
			fields["disposition"] = disposition
			caseModel.Disposition = disposition
		}
		if request.Status == constvars.CaseStatusDischarged && caseModel.DischargeTime == nil {
			fields["dischargeTime"] = now
			caseModel.DischargeTime = &now
		}
	}

	if err := uc.CaseRepository.UpdateFields(ctx, caseID, fields); err != nil {
		return nil, err
	}
	caseModel.SetUpdatedAt()

	if request.Status == constvars.CaseStatusAdmitted {
		uc.triggerAdmissionRequest(ctx, caseModel, staffID)
	}

	uc.Log.Info("emergencyUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
		zap.String(constvars.LoggingPreviousKey, previousStatus),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	response := uc.buildCaseResponse(ctx, caseModel)
	uc.publishEvent(ctx, constvars.EmergencyEventStatus, response, previousStatus, request.Status)
	return response, nil
}

func (uc *emergencyUsecase) UpdateVitals(ctx context.Context, caseID string, request *requests.UpdateVitals) (*responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	staffID, _ := ctx.Value(constvars.CONTEXT_STAFF_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.UpdateVitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	vitals := &models.VitalSigns{
		BloodPressure:    request.BloodPressure,
		Pulse:            request.Pulse,
		Temperature:      request.Temperature,
		RespiratoryRate:  request.RespiratoryRate,
		OxygenSaturation: request.OxygenSaturation,
		RecordedAt:       time.Now(),
		RecordedBy:       staffID,
	}

	if err := uc.CaseRepository.UpdateFields(ctx, caseID, map[string]interface{}{"vitals": vitals}); err != nil {
		return nil, err
	}
	caseModel.Vitals = vitals
	caseModel.SetUpdatedAt()

	response := uc.buildCaseResponse(ctx, caseModel)
	uc.publishEvent(ctx, constvars.EmergencyEventVitals, response, "", "")
	return response, nil
}

func (uc *emergencyUsecase) TriageQueue(ctx context.Context) ([]responses.EmergencyCase, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.TriageQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cases, err := uc.CaseRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	SortByPriority(cases)

	response := make([]responses.EmergencyCase, len(cases))
	for i := range cases {
		response[i] = *uc.buildCaseResponse(ctx, &cases[i])
	}
	return response, nil
}

func (uc *emergencyUsecase) LiveBoard(ctx context.Context) ([]responses.LiveBoardRow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.LiveBoard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cases, err := uc.CaseRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	SortByPriority(cases)

	now := time.Now()
	rows := make([]responses.LiveBoardRow, len(cases))
	for i := range cases {
		rows[i] = responses.LiveBoardRow{
			EmergencyCase: *uc.buildCaseResponse(ctx, &cases[i]),
			WaitingTime:   FormatWaitingTime(WaitingDuration(&cases[i], now)),
		}
	}
	return rows, nil
}

func (uc *emergencyUsecase) Dashboard(ctx context.Context) (*responses.EmergencyDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("emergencyUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// The cache is an optimization; a broken read falls through to the store.
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyEmergencyDashboard)
	if err != nil {
		uc.Log.Warn("emergencyUsecase.Dashboard cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		cached = ""
	}
	if cached != "" {
		var dashboard responses.EmergencyDashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err != nil {
			uc.Log.Warn("emergencyUsecase.Dashboard cached payload invalid",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			return &dashboard, nil
		}
	}

	active, err := uc.CaseRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	arrivedToday, err := uc.CaseRepository.FindArrivedBetween(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	byTriage := map[string]int{}
	for i := range arrivedToday {
		byTriage[arrivedToday[i].TriageLevel]++
	}

	dashboard := &responses.EmergencyDashboard{
		ActiveCases:   len(active),
		ArrivedToday:  len(arrivedToday),
		TodayByTriage: byTriage,
		GeneratedAt:   now,
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyEmergencyDashboard, dashboard, dashboardCacheTTL); err != nil {
		uc.Log.Warn("emergencyUsecase.Dashboard cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return dashboard, nil
}

// triggerAdmissionRequest hands the case over to bed management. The ED
// status transition is already committed; any failure here is logged with
// the case identifier and swallowed so the caller still sees success.
func (uc *emergencyUsecase) triggerAdmissionRequest(ctx context.Context, caseModel *models.EmergencyCase, staffID string) {
	requestingDoctor := caseModel.AssignedDoctor
	if requestingDoctor == "" {
		requestingDoctor = staffID
	}
	reason := caseModel.ChiefComplaint
	if reason == "" {
		reason = constvars.AdmissionDefaultReason
	}

	admissionRequest := &models.AdmissionRequest{
		CaseID:              caseModel.ID,
		CaseNumber:          caseModel.CaseNumber,
		PatientID:           caseModel.PatientID,
		RequestingDoctor:    requestingDoctor,
		Reason:              reason,
		Priority:            constvars.AdmissionPriorityEmergency,
		RecommendedWardType: RecommendedWardType(caseModel.TriageLevel),
		Status:              constvars.AdmissionStatusPending,
		Notes:               formatAdmissionNote(caseModel.TriageLevel),
	}

	if err := uc.AdmissionQueue.Enqueue(ctx, admissionRequest); err != nil {
		uc.Log.Error("emergencyUsecase admission request enqueue failed",
			zap.String(constvars.LoggingCaseIDKey, caseModel.ID),
			zap.String(constvars.LoggingCaseNumberKey, caseModel.CaseNumber),
			zap.Error(err),
		)
	}
}

func (uc *emergencyUsecase) publishEvent(ctx context.Context, event string, caseResponse *responses.EmergencyCase, previousStatus, newStatus string) {
	err := uc.EventPublisher.Publish(ctx, contracts.CaseEvent{
		Event:          event,
		Case:           caseResponse,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
	})
	if err != nil {
		uc.Log.Warn("emergencyUsecase event publish failed",
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingCaseIDKey, caseResponse.ID),
			zap.Error(err),
		)
	}
}

func (uc *emergencyUsecase) buildCaseResponse(ctx context.Context, caseModel *models.EmergencyCase) *responses.EmergencyCase {
	response := &responses.EmergencyCase{
		ID:                 caseModel.ID,
		CaseNumber:         caseModel.CaseNumber,
		PatientID:          caseModel.PatientID,
		ArrivalTime:        caseModel.ArrivalTime,
		TriageLevel:        caseModel.TriageLevel,
		TriageTime:         caseModel.TriageTime,
		TriageBy:           caseModel.TriageBy,
		ChiefComplaint:     caseModel.ChiefComplaint,
		Status:             caseModel.Status,
		Disposition:        caseModel.Disposition,
		Vitals:             caseModel.Vitals,
		AssignedDoctor:     caseModel.AssignedDoctor,
		AssignedNurse:      caseModel.AssignedNurse,
		TriageHistory:      caseModel.TriageHistory,
		TreatmentStartTime: caseModel.TreatmentStartTime,
		TreatmentEndTime:   caseModel.TreatmentEndTime,
		DischargeTime:      caseModel.DischargeTime,
		TreatmentNotes:     caseModel.TreatmentNotes,
		Diagnosis:          caseModel.Diagnosis,
		AdmissionID:        caseModel.AdmissionID,
		CreatedBy:          caseModel.CreatedBy,
		CreatedAt:          caseModel.CreatedAt,
		UpdatedAt:          caseModel.UpdatedAt,
	}

	if patient, err := uc.PatientRepository.FindByID(ctx, caseModel.PatientID); err == nil && patient != nil {
		response.PatientName = patient.DisplayName()
	}
	response.AssignedDoctorName = uc.staffDisplayName(ctx, caseModel.AssignedDoctor)
	response.AssignedNurseName = uc.staffDisplayName(ctx, caseModel.AssignedNurse)
	response.TriageByName = uc.staffDisplayName(ctx, caseModel.TriageBy)
	return response
}

// staffDisplayName resolves a staff identifier against the directory. Joins
// are tolerant: an unknown or unreadable entry leaves the name empty.
func (uc *emergencyUsecase) staffDisplayName(ctx context.Context, staffID string) string {
	if staffID == "" {
		return ""
	}
	staffMember, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil || staffMember == nil {
		return ""
	}
	return staffMember.DisplayName()
}
