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
	ErrVisitNotFound          = errors.New("OPD visit not found")
	ErrRequestNotFound        = errors.New("admission request not found")
	ErrRequestAlreadyDecided  = errors.New("admission request already decided")
	ErrAdmissionNotFound      = errors.New("admission not found")
	ErrAlreadyDischarged      = errors.New("patient already discharged")
	ErrBedNotFound            = errors.New("bed not found")
	ErrBedOccupied            = errors.New("bed is already occupied")
	ErrPatientAlreadyAdmitted = errors.New("patient already has an active admission")
)

type AdmissionUsecase interface {
	CreateRequest(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAdmissionRequestRequest) (*dto.AdmissionRequestResponse, error)
	ListRequests(ctx context.Context) ([]dto.AdmissionRequestResponse, error)
	ApproveRequest(ctx context.Context, staffID uuid.UUID, requestID int64, req *dto.ApproveAdmissionRequest) (*dto.AdmissionResponse, error)
	RejectRequest(ctx context.Context, staffID uuid.UUID, requestID int64, req *dto.RejectAdmissionRequest) (*dto.AdmissionRequestResponse, error)
	GetAdmission(ctx context.Context, ipdNo string) (*dto.AdmissionResponse, error)
	ListAdmissions(ctx context.Context, activeOnly bool) ([]dto.AdmissionResponse, error)
	Discharge(ctx context.Context, staffID uuid.UUID, ipdNo string) (*dto.AdmissionResponse, error)
	ListAvailableBeds(ctx context.Context, ward string) ([]dto.BedResponse, error)
}

type admissionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	admissionRepo repository.AdmissionRepository
	requestRepo   repository.AdmissionRequestRepository
	bedRepo       repository.BedRepository
	opdVisitRepo  repository.OPDVisitRepository
	idSvc         *service.IDService
	auditSvc      service.AuditService
}

func NewAdmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	admissionRepo repository.AdmissionRepository,
	requestRepo repository.AdmissionRequestRepository,
	bedRepo repository.BedRepository,
	opdVisitRepo repository.OPDVisitRepository,
	idSvc *service.IDService,
	auditSvc service.AuditService,
) AdmissionUsecase {
	return &admissionUsecase{
		db:            db,
		log:           log,
		admissionRepo: admissionRepo,
		requestRepo:   requestRepo,
		bedRepo:       bedRepo,
		opdVisitRepo:  opdVisitRepo,
		idSvc:         idSvc,
		auditSvc:      auditSvc,
	}
}

func (u *admissionUsecase) CreateRequest(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAdmissionRequestRequest) (*dto.AdmissionRequestResponse, error) {
	visit, err := u.opdVisitRepo.FindByOPDNo(u.db.WithContext(ctx), req.OPDNo)
	if err != nil {
		u.log.Warnf("Failed to find OPD visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request := &entity.OPDToIPDRequest{
		OPDNo:    req.OPDNo,
		UHID:     visit.UHID,
		DoctorID: doctorID,
		Reason:   req.Reason,
		Status:   entity.AdmissionRequestPending,
	}

	if err := u.requestRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create admission request: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &doctorID, entity.AuditActionAdmissionRequest, "admission_request", request.OPDNo, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RequestToResponse(request), nil
}

func (u *admissionUsecase) ListRequests(ctx context.Context) ([]dto.AdmissionRequestResponse, error) {
	requests, err := u.requestRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list admission requests: %+v", err)
		return nil, err
	}

	return converter.RequestsToResponses(requests), nil
}

// ApproveRequest turns a pending referral into an admission in one
// transaction: decide the request, claim the bed, issue the IPD number,
// insert the stay. The conditional UPDATEs on the request and the bed
// are the race guards; losing either one aborts the whole chain.
func (u *admissionUsecase) ApproveRequest(ctx context.Context, staffID uuid.UUID, requestID int64, req *dto.ApproveAdmissionRequest) (*dto.AdmissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find admission request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if !request.IsPending() {
		return nil, ErrRequestAlreadyDecided
	}

	bed, err := u.bedRepo.FindByID(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to find bed: %+v", err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	now := time.Now()

	rows, err := u.requestRepo.Decide(tx, requestID, entity.AdmissionRequestApproved, staffID, now, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to approve admission request: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRequestAlreadyDecided
	}

	rows, err = u.bedRepo.Occupy(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to occupy bed: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBedOccupied
	}

	ipdNo, err := u.idSvc.NextIPDNo(tx, now)
	if err != nil {
		return nil, err
	}

	opdNo := request.OPDNo
	bedID := req.BedID
	admission := &entity.IPDAdmission{
		IPDNo:           ipdNo,
		OPDNo:           &opdNo,
		UHID:            request.UHID,
		DoctorID:        request.DoctorID,
		BedID:           &bedID,
		AdmissionReason: req.AdmissionReason,
		DepositAmount:   req.DepositAmount,
		AdmissionDate:   now,
	}

	if err := u.admissionRepo.Create(tx, admission); err != nil {
		u.log.Warnf("Failed to create admission: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionAdmissionApprove, "admission", ipdNo, entity.JSON{
		"request_id": requestID,
		"bed_id":     req.BedID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	bed.Occupied = true
	admission.Bed = bed
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) RejectRequest(ctx context.Context, staffID uuid.UUID, requestID int64, req *dto.RejectAdmissionRequest) (*dto.AdmissionRequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find admission request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	now := time.Now()

	rows, err := u.requestRepo.Decide(tx, requestID, entity.AdmissionRequestRejected, staffID, now, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to reject admission request: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRequestAlreadyDecided
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionAdmissionReject, "admission_request", request.OPDNo, entity.JSON{
		"request_id": requestID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	request.Status = entity.AdmissionRequestRejected
	request.Notes = req.Notes
	request.ApprovedBy = &staffID
	request.ApprovedAt = &now
	return converter.RequestToResponse(request), nil
}

func (u *admissionUsecase) GetAdmission(ctx context.Context, ipdNo string) (*dto.AdmissionResponse, error) {
	admission, err := u.admissionRepo.FindByIPDNo(u.db.WithContext(ctx), ipdNo)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) ListAdmissions(ctx context.Context, activeOnly bool) ([]dto.AdmissionResponse, error) {
	admissions, err := u.admissionRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list admissions: %+v", err)
		return nil, err
	}

	return converter.AdmissionsToResponses(admissions), nil
}

// Discharge stamps the discharge date and frees the bed. The conditional
// UPDATE makes a second discharge a no-op error instead of moving the
// date.
func (u *admissionUsecase) Discharge(ctx context.Context, staffID uuid.UUID, ipdNo string) (*dto.AdmissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByIPDNo(tx, ipdNo)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	now := time.Now()

	rows, err := u.admissionRepo.Discharge(tx, ipdNo, now)
	if err != nil {
		u.log.Warnf("Failed to discharge admission: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyDischarged
	}

	if admission.BedID != nil {
		if err := u.bedRepo.Release(tx, *admission.BedID); err != nil {
			u.log.Warnf("Failed to release bed: %+v", err)
			return nil, err
		}
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionDischarge, "admission", ipdNo, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	admission.Discharge(now)
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) ListAvailableBeds(ctx context.Context, ward string) ([]dto.BedResponse, error) {
	beds, err := u.bedRepo.FindAvailable(u.db.WithContext(ctx), ward)
	if err != nil {
		u.log.Warnf("Failed to list beds: %+v", err)
		return nil, err
	}

	return converter.BedsToResponses(beds), nil
}
