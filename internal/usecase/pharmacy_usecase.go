package usecase

import (
	"context"
	"errors"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicationRequestNotFound = errors.New("medication request not found")
	ErrAlreadyDispensed          = errors.New("medication request already dispensed")
)

type PharmacyUsecase interface {
	Prescribe(ctx context.Context, doctorID uuid.UUID, req *dto.PrescribeMedicationRequest) (*dto.MedicationRequestResponse, error)
	ListRequests(ctx context.Context, status entity.MedicationRequestStatus) ([]dto.MedicationRequestResponse, error)
	Dispense(ctx context.Context, pharmacistID uuid.UUID, requestID int64) (*dto.MedicationRequestResponse, error)
	ListMedications(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.MedicationResponse, error)
}

type pharmacyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	pharmacyRepo  repository.PharmacyRepository
	opdVisitRepo  repository.OPDVisitRepository
	admissionRepo repository.AdmissionRepository
	auditSvc      service.AuditService
}

func NewPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	pharmacyRepo repository.PharmacyRepository,
	opdVisitRepo repository.OPDVisitRepository,
	admissionRepo repository.AdmissionRepository,
	auditSvc service.AuditService,
) PharmacyUsecase {
	return &pharmacyUsecase{
		db:            db,
		log:           log,
		pharmacyRepo:  pharmacyRepo,
		opdVisitRepo:  opdVisitRepo,
		admissionRepo: admissionRepo,
		auditSvc:      auditSvc,
	}
}

// Prescribe files the prescription line and its pharmacy dispense request
// together, so every prescription shows up on the pharmacist worklist.
func (u *pharmacyUsecase) Prescribe(ctx context.Context, doctorID uuid.UUID, req *dto.PrescribeMedicationRequest) (*dto.MedicationRequestResponse, error) {
	visitType := entity.VisitType(req.VisitType)

	var opdNo, ipdNo *string
	if visitType == entity.VisitTypeIPD {
		admission, err := u.admissionRepo.FindByIPDNo(u.db.WithContext(ctx), req.VisitNo)
		if err != nil {
			u.log.Warnf("Failed to find admission: %+v", err)
			return nil, err
		}
		if admission == nil {
			return nil, ErrAdmissionNotFound
		}
		ipdNo = &admission.IPDNo
	} else {
		visit, err := u.opdVisitRepo.FindByOPDNo(u.db.WithContext(ctx), req.VisitNo)
		if err != nil {
			u.log.Warnf("Failed to find OPD visit: %+v", err)
			return nil, err
		}
		if visit == nil {
			return nil, ErrVisitNotFound
		}
		opdNo = &visit.OPDNo
	}

	var startDate, endDate *time.Time
	if req.StartDate != "" {
		d, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		startDate = &d
	}
	if req.EndDate != "" {
		d, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		endDate = &d
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medication := &entity.Medication{
		OPDNo:        opdNo,
		IPDNo:        ipdNo,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		StartDate:    startDate,
		EndDate:      endDate,
		Notes:        req.Notes,
		PrescribedBy: doctorID,
	}

	if err := u.pharmacyRepo.CreateMedication(tx, medication); err != nil {
		u.log.Warnf("Failed to create medication: %+v", err)
		return nil, err
	}

	request := &entity.MedicationRequest{
		MedicationID: medication.ID,
		OPDNo:        opdNo,
		IPDNo:        ipdNo,
		Status:       entity.MedicationRequestPending,
		RequestDate:  time.Now(),
	}

	if err := u.pharmacyRepo.CreateRequest(tx, request); err != nil {
		u.log.Warnf("Failed to create medication request: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &doctorID, entity.AuditActionMedicationOrder, "medication_request", req.VisitNo, entity.JSON{
		"medication": medication.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	request.Medication = *medication
	return converter.MedicationRequestToResponse(request), nil
}

func (u *pharmacyUsecase) ListRequests(ctx context.Context, status entity.MedicationRequestStatus) ([]dto.MedicationRequestResponse, error) {
	requests, err := u.pharmacyRepo.FindRequestsByStatus(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list medication requests: %+v", err)
		return nil, err
	}

	return converter.MedicationRequestsToResponses(requests), nil
}

// Dispense hands the medication over. The conditional UPDATE keeps two
// pharmacists from dispensing the same request twice.
func (u *pharmacyUsecase) Dispense(ctx context.Context, pharmacistID uuid.UUID, requestID int64) (*dto.MedicationRequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.pharmacyRepo.FindRequestByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find medication request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrMedicationRequestNotFound
	}

	rows, err := u.pharmacyRepo.Dispense(tx, requestID, pharmacistID)
	if err != nil {
		u.log.Warnf("Failed to dispense medication request: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyDispensed
	}

	entityID := ""
	if request.OPDNo != nil {
		entityID = *request.OPDNo
	} else if request.IPDNo != nil {
		entityID = *request.IPDNo
	}
	if err := u.auditSvc.Record(tx, &pharmacistID, entity.AuditActionMedicationDispense, "medication_request", entityID, entity.JSON{
		"request_id": requestID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	request.Dispense(pharmacistID, time.Now())
	return converter.MedicationRequestToResponse(request), nil
}

func (u *pharmacyUsecase) ListMedications(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.MedicationResponse, error) {
	medications, err := u.pharmacyRepo.FindMedicationsByVisit(u.db.WithContext(ctx), visitType, visitNo)
	if err != nil {
		u.log.Warnf("Failed to list medications: %+v", err)
		return nil, err
	}

	return converter.MedicationsToResponses(medications), nil
}
