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
	ErrProcedureNotFound  = errors.New("procedure entry not found")
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrAssignmentNotFound = errors.New("therapist assignment not found")
	ErrAlreadyCompleted   = errors.New("therapy session already completed")
)

type TherapyUsecase interface {
	Schedule(ctx context.Context, staffID uuid.UUID, req *dto.ScheduleTherapyRequest) (*dto.TherapyResponse, error)
	Complete(ctx context.Context, therapistID uuid.UUID, assignmentID int64) (*dto.TherapyResponse, error)
	GetSchedule(ctx context.Context, therapistID uuid.UUID, date time.Time) ([]dto.TherapyResponse, error)
}

type therapyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	therapyRepo repository.TherapyRepository
	staffRepo   repository.StaffRepository
	auditSvc    service.AuditService
}

func NewTherapyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	therapyRepo repository.TherapyRepository,
	staffRepo repository.StaffRepository,
	auditSvc service.AuditService,
) TherapyUsecase {
	return &therapyUsecase{
		db:          db,
		log:         log,
		therapyRepo: therapyRepo,
		staffRepo:   staffRepo,
		auditSvc:    auditSvc,
	}
}

func (u *therapyUsecase) Schedule(ctx context.Context, staffID uuid.UUID, req *dto.ScheduleTherapyRequest) (*dto.TherapyResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	procedure, err := u.therapyRepo.FindProcedureByID(db, req.ProcedureEntryID)
	if err != nil {
		u.log.Warnf("Failed to find procedure entry: %+v", err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}

	therapistID, err := uuid.Parse(req.TherapistID)
	if err != nil {
		return nil, ErrTherapistNotFound
	}

	therapist, err := u.staffRepo.FindByID(db, therapistID)
	if err != nil {
		u.log.Warnf("Failed to find therapist: %+v", err)
		return nil, err
	}
	if therapist == nil || therapist.Role != entity.RoleTherapist {
		return nil, ErrTherapistNotFound
	}

	var doctorID *uuid.UUID
	if req.DoctorID != nil {
		id, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		doctorID = &id
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assignment := &entity.TherapistAssignment{
		ProcedureEntryID: procedure.ID,
		VisitNo:          procedure.VisitNo,
		TherapistID:      therapistID,
		DoctorID:         doctorID,
		ScheduledAt:      scheduledAt,
		Status:           entity.TherapyStatusPending,
	}

	if err := u.therapyRepo.CreateAssignment(tx, assignment); err != nil {
		u.log.Warnf("Failed to create therapist assignment: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionTherapySchedule, "therapist_assignment", procedure.VisitNo, entity.JSON{
		"procedure":    procedure.ProcedureName,
		"therapist_id": therapistID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	assignment.Procedure = *procedure
	assignment.Therapist = *therapist
	return converter.TherapyToResponse(assignment), nil
}

// Complete marks a session done. The conditional UPDATE keeps a double
// completion from looking like a second session.
func (u *therapyUsecase) Complete(ctx context.Context, therapistID uuid.UUID, assignmentID int64) (*dto.TherapyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assignment, err := u.therapyRepo.FindAssignmentByID(tx, assignmentID)
	if err != nil {
		u.log.Warnf("Failed to find therapist assignment: %+v", err)
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.TherapistID != therapistID {
		return nil, ErrAssignmentNotFound
	}

	rows, err := u.therapyRepo.Complete(tx, assignmentID)
	if err != nil {
		u.log.Warnf("Failed to complete therapy session: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyCompleted
	}

	if err := u.auditSvc.Record(tx, &therapistID, entity.AuditActionTherapyComplete, "therapist_assignment", assignment.VisitNo, entity.JSON{
		"assignment_id": assignmentID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	assignment.Complete()
	return converter.TherapyToResponse(assignment), nil
}

func (u *therapyUsecase) GetSchedule(ctx context.Context, therapistID uuid.UUID, date time.Time) ([]dto.TherapyResponse, error) {
	assignments, err := u.therapyRepo.FindSchedule(u.db.WithContext(ctx), therapistID, date)
	if err != nil {
		u.log.Warnf("Failed to list therapist schedule: %+v", err)
		return nil, err
	}

	return converter.TherapiesToResponses(assignments), nil
}
