package usecase

import (
	"context"
	"errors"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCaseSheetNotFound = errors.New("case sheet not found")

type CaseSheetUsecase interface {
	CreateCaseSheet(ctx context.Context, doctorID uuid.UUID, req *dto.CreateCaseSheetRequest) (*dto.CaseSheetResponse, error)
	GetCaseSheet(ctx context.Context, id int64) (*dto.CaseSheetResponse, error)
	ListCaseSheets(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.CaseSheetResponse, error)
	DeleteCaseSheet(ctx context.Context, staffID uuid.UUID, id int64) error
	ListProcedures(ctx context.Context, visitNo string) ([]dto.ProcedureEntryResponse, error)
}

type caseSheetUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	caseSheetRepo repository.CaseSheetRepository
	therapyRepo   repository.TherapyRepository
	opdVisitRepo  repository.OPDVisitRepository
	admissionRepo repository.AdmissionRepository

	appointmentRepo repository.AppointmentRepository
	auditSvc        service.AuditService
}

func NewCaseSheetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	caseSheetRepo repository.CaseSheetRepository,
	therapyRepo repository.TherapyRepository,
	opdVisitRepo repository.OPDVisitRepository,
	admissionRepo repository.AdmissionRepository,
	appointmentRepo repository.AppointmentRepository,
	auditSvc service.AuditService,
) CaseSheetUsecase {
	return &caseSheetUsecase{
		db:              db,
		log:             log,
		caseSheetRepo:   caseSheetRepo,
		therapyRepo:     therapyRepo,
		opdVisitRepo:    opdVisitRepo,
		admissionRepo:   admissionRepo,
		appointmentRepo: appointmentRepo,
		auditSvc:        auditSvc,
	}
}

// CreateCaseSheet files a clinical note and raises a procedure entry for
// every advised therapy. Filing the first sheet for an OPD visit flips
// the appointment to seen.
func (u *caseSheetUsecase) CreateCaseSheet(ctx context.Context, doctorID uuid.UUID, req *dto.CreateCaseSheetRequest) (*dto.CaseSheetResponse, error) {
	visitType := entity.VisitType(req.VisitType)

	uhid, appointmentID, err := u.resolveVisit(ctx, visitType, req.VisitNo)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	sheet := &entity.CaseSheet{
		VisitType:            visitType,
		VisitNo:              req.VisitNo,
		UHID:                 uhid,
		DoctorID:             &doctorID,
		ChiefComplaints:      req.ChiefComplaints,
		AssociatedComplaints: req.AssociatedComplaints,
		History:              req.History,
		Examination:          req.Examination,
		Diagnosis:            req.Diagnosis,
		TreatmentPlan:        req.TreatmentPlan,
		MedicationsAdvised:   entity.StringList(req.MedicationsAdvised),
	}

	if err := u.caseSheetRepo.Create(tx, sheet); err != nil {
		u.log.Warnf("Failed to create case sheet: %+v", err)
		return nil, err
	}

	procedures := make([]entity.ProcedureEntry, 0, len(req.ProceduresAdvised))
	for _, advice := range req.ProceduresAdvised {
		procedure := entity.ProcedureEntry{
			VisitType:     visitType,
			VisitNo:       req.VisitNo,
			ProcedureName: advice.Name,
			Requirements:  advice.Requirements,
		}
		if err := u.therapyRepo.CreateProcedure(tx, &procedure); err != nil {
			u.log.Warnf("Failed to create procedure entry: %+v", err)
			return nil, err
		}
		procedures = append(procedures, procedure)
	}

	if visitType == entity.VisitTypeOPD && appointmentID != 0 {
		// Idempotent: zero rows just means the appointment was seen
		// already.
		if _, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusSeen); err != nil {
			u.log.Warnf("Failed to mark appointment seen: %+v", err)
			return nil, err
		}
	}

	if err := u.auditSvc.Record(tx, &doctorID, entity.AuditActionCaseSheetCreate, "case_sheet", req.VisitNo, entity.JSON{
		"visit_type": req.VisitType,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CaseSheetToResponse(sheet, procedures), nil
}

func (u *caseSheetUsecase) GetCaseSheet(ctx context.Context, id int64) (*dto.CaseSheetResponse, error) {
	db := u.db.WithContext(ctx)

	sheet, err := u.caseSheetRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find case sheet: %+v", err)
		return nil, err
	}
	if sheet == nil {
		return nil, ErrCaseSheetNotFound
	}

	procedures, err := u.therapyRepo.FindProceduresByVisit(db, sheet.VisitNo)
	if err != nil {
		u.log.Warnf("Failed to list procedures: %+v", err)
		return nil, err
	}

	return converter.CaseSheetToResponse(sheet, procedures), nil
}

func (u *caseSheetUsecase) ListCaseSheets(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.CaseSheetResponse, error) {
	sheets, err := u.caseSheetRepo.FindByVisit(u.db.WithContext(ctx), visitType, visitNo)
	if err != nil {
		u.log.Warnf("Failed to list case sheets: %+v", err)
		return nil, err
	}

	return converter.CaseSheetsToResponses(sheets), nil
}

func (u *caseSheetUsecase) DeleteCaseSheet(ctx context.Context, staffID uuid.UUID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.caseSheetRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete case sheet: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrCaseSheetNotFound
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionCaseSheetDelete, "case_sheet", "", entity.JSON{
		"id": id,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *caseSheetUsecase) ListProcedures(ctx context.Context, visitNo string) ([]dto.ProcedureEntryResponse, error) {
	procedures, err := u.therapyRepo.FindProceduresByVisit(u.db.WithContext(ctx), visitNo)
	if err != nil {
		u.log.Warnf("Failed to list procedures: %+v", err)
		return nil, err
	}

	return converter.ProcedureEntriesToResponses(procedures), nil
}

// resolveVisit maps a visit number to its patient. OPD visits also yield
// the appointment to flip once the sheet is filed.
func (u *caseSheetUsecase) resolveVisit(ctx context.Context, visitType entity.VisitType, visitNo string) (string, int64, error) {
	db := u.db.WithContext(ctx)

	switch visitType {
	case entity.VisitTypeOPD:
		visit, err := u.opdVisitRepo.FindByOPDNo(db, visitNo)
		if err != nil {
			u.log.Warnf("Failed to find OPD visit: %+v", err)
			return "", 0, err
		}
		if visit == nil {
			return "", 0, ErrVisitNotFound
		}
		return visit.UHID, visit.AppointmentID, nil
	case entity.VisitTypeIPD:
		admission, err := u.admissionRepo.FindByIPDNo(db, visitNo)
		if err != nil {
			u.log.Warnf("Failed to find admission: %+v", err)
			return "", 0, err
		}
		if admission == nil {
			return "", 0, ErrAdmissionNotFound
		}
		return admission.UHID, 0, nil
	}

	return "", 0, ErrVisitNotFound
}
