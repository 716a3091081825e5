package usecase

import (
	"context"
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

type BillingUsecase interface {
	CreateRecord(ctx context.Context, staffID uuid.UUID, req *dto.CreateBillingRecordRequest) (*dto.BillingRecordResponse, error)
	ListRecords(ctx context.Context, opdNo string) ([]dto.BillingRecordResponse, error)
	CreateIPDBill(ctx context.Context, staffID uuid.UUID, req *dto.CreateIPDBillRequest) (*dto.IPDBillResponse, error)
	ListIPDBills(ctx context.Context, ipdNo string) ([]dto.IPDBillResponse, error)
}

type billingUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	billingRepo   repository.BillingRepository
	opdVisitRepo  repository.OPDVisitRepository
	admissionRepo repository.AdmissionRepository
	auditSvc      service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	opdVisitRepo repository.OPDVisitRepository,
	admissionRepo repository.AdmissionRepository,
	auditSvc service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:            db,
		log:           log,
		billingRepo:   billingRepo,
		opdVisitRepo:  opdVisitRepo,
		admissionRepo: admissionRepo,
		auditSvc:      auditSvc,
	}
}

func (u *billingUsecase) CreateRecord(ctx context.Context, staffID uuid.UUID, req *dto.CreateBillingRecordRequest) (*dto.BillingRecordResponse, error) {
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

	record := &entity.BillingRecord{
		OPDNo:       req.OPDNo,
		BillDate:    time.Now(),
		Description: req.Description,
		Amount:      req.Amount,
	}

	if err := u.billingRepo.CreateRecord(tx, record); err != nil {
		u.log.Warnf("Failed to create billing record: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionBillCreate, "billing_record", req.OPDNo, entity.JSON{
		"amount": req.Amount.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillingRecordToResponse(record), nil
}

func (u *billingUsecase) ListRecords(ctx context.Context, opdNo string) ([]dto.BillingRecordResponse, error) {
	records, err := u.billingRepo.FindRecordsByOPDNo(u.db.WithContext(ctx), opdNo)
	if err != nil {
		u.log.Warnf("Failed to list billing records: %+v", err)
		return nil, err
	}

	return converter.BillingRecordsToResponses(records), nil
}

// CreateIPDBill stores the six itemized charges. The total is computed
// here and persisted; a client-sent total would be ignored anyway since
// the request carries none.
func (u *billingUsecase) CreateIPDBill(ctx context.Context, staffID uuid.UUID, req *dto.CreateIPDBillRequest) (*dto.IPDBillResponse, error) {
	admission, err := u.admissionRepo.FindByIPDNo(u.db.WithContext(ctx), req.IPDNo)
	if err != nil {
		u.log.Warnf("Failed to find admission: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bill := &entity.IPDBill{
		IPDNo:           req.IPDNo,
		BedCharge:       req.BedCharge,
		NursingCharge:   req.NursingCharge,
		DoctorCharge:    req.DoctorCharge,
		ProcedureCharge: req.ProcedureCharge,
		SurgeryCharge:   req.SurgeryCharge,
		OtherCharge:     req.OtherCharge,
		BillDate:        time.Now(),
	}
	bill.Total = bill.ChargesTotal()

	if err := u.billingRepo.CreateIPDBill(tx, bill); err != nil {
		u.log.Warnf("Failed to create IPD bill: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionBillCreate, "ipd_bill", req.IPDNo, entity.JSON{
		"total": bill.Total.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.IPDBillToResponse(bill), nil
}

func (u *billingUsecase) ListIPDBills(ctx context.Context, ipdNo string) ([]dto.IPDBillResponse, error) {
	bills, err := u.billingRepo.FindIPDBillsByIPDNo(u.db.WithContext(ctx), ipdNo)
	if err != nil {
		u.log.Warnf("Failed to list IPD bills: %+v", err)
		return nil, err
	}

	return converter.IPDBillsToResponses(bills), nil
}
