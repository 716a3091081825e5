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
	ErrInvestigationNotFound = errors.New("investigation not found")
	ErrInvestigationDone     = errors.New("investigation already completed")
)

type InvestigationUsecase interface {
	Request(ctx context.Context, doctorID uuid.UUID, req *dto.RequestInvestigationRequest) (*dto.InvestigationResponse, error)
	ListByStatus(ctx context.Context, status entity.InvestigationStatus) ([]dto.InvestigationResponse, error)
	ListByVisit(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.InvestigationResponse, error)
	Complete(ctx context.Context, technicianID uuid.UUID, investigationID int64) (*dto.InvestigationResponse, error)
}

type investigationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	investigationRepo repository.InvestigationRepository
	opdVisitRepo      repository.OPDVisitRepository
	admissionRepo     repository.AdmissionRepository
	auditSvc          service.AuditService
}

func NewInvestigationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	investigationRepo repository.InvestigationRepository,
	opdVisitRepo repository.OPDVisitRepository,
	admissionRepo repository.AdmissionRepository,
	auditSvc service.AuditService,
) InvestigationUsecase {
	return &investigationUsecase{
		db:                db,
		log:               log,
		investigationRepo: investigationRepo,
		opdVisitRepo:      opdVisitRepo,
		admissionRepo:     admissionRepo,
		auditSvc:          auditSvc,
	}
}

func (u *investigationUsecase) Request(ctx context.Context, doctorID uuid.UUID, req *dto.RequestInvestigationRequest) (*dto.InvestigationResponse, error) {
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

	var scheduledDate *time.Time
	if req.ScheduledDate != "" {
		d, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		scheduledDate = &d
	}

	priority := entity.InvestigationPriority(req.Priority)
	if !entity.ValidPriority(priority) {
		priority = entity.PriorityNormal
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	investigation := &entity.Investigation{
		OPDNo:         opdNo,
		IPDNo:         ipdNo,
		Tests:         entity.StringList(req.Tests),
		DoctorID:      &doctorID,
		ScheduledDate: scheduledDate,
		Priority:      priority,
		Notes:         req.Notes,
		Status:        entity.InvestigationPending,
	}

	if err := u.investigationRepo.Create(tx, investigation); err != nil {
		u.log.Warnf("Failed to create investigation: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &doctorID, entity.AuditActionInvestigationRequest, "investigation", req.VisitNo, entity.JSON{
		"tests":    req.Tests,
		"priority": string(priority),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) ListByStatus(ctx context.Context, status entity.InvestigationStatus) ([]dto.InvestigationResponse, error) {
	investigations, err := u.investigationRepo.FindByStatus(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list investigations: %+v", err)
		return nil, err
	}

	return converter.InvestigationsToResponses(investigations), nil
}

func (u *investigationUsecase) ListByVisit(ctx context.Context, visitType entity.VisitType, visitNo string) ([]dto.InvestigationResponse, error) {
	investigations, err := u.investigationRepo.FindByVisit(u.db.WithContext(ctx), visitType, visitNo)
	if err != nil {
		u.log.Warnf("Failed to list investigations: %+v", err)
		return nil, err
	}

	return converter.InvestigationsToResponses(investigations), nil
}

// Complete marks an investigation done. The conditional UPDATE keeps a
// double completion from overwriting the first technician's stamp.
func (u *investigationUsecase) Complete(ctx context.Context, technicianID uuid.UUID, investigationID int64) (*dto.InvestigationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	investigation, err := u.investigationRepo.FindByID(tx, investigationID)
	if err != nil {
		u.log.Warnf("Failed to find investigation: %+v", err)
		return nil, err
	}
	if investigation == nil {
		return nil, ErrInvestigationNotFound
	}

	rows, err := u.investigationRepo.Complete(tx, investigationID, technicianID)
	if err != nil {
		u.log.Warnf("Failed to complete investigation: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvestigationDone
	}

	entityID := ""
	if investigation.OPDNo != nil {
		entityID = *investigation.OPDNo
	} else if investigation.IPDNo != nil {
		entityID = *investigation.IPDNo
	}
	if err := u.auditSvc.Record(tx, &technicianID, entity.AuditActionInvestigationComplete, "investigation", entityID, entity.JSON{
		"investigation_id": investigationID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	investigation.Complete(technicianID, time.Now())
	return converter.InvestigationToResponse(investigation), nil
}
