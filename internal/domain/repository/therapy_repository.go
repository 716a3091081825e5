package repository

import (
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TherapyRepository interface {
	CreateProcedure(db *gorm.DB, procedure *entity.ProcedureEntry) error
	FindProcedureByID(db *gorm.DB, id int64) (*entity.ProcedureEntry, error)
	FindProceduresByVisit(db *gorm.DB, visitNo string) ([]entity.ProcedureEntry, error)

	CreateAssignment(db *gorm.DB, assignment *entity.TherapistAssignment) error
	FindAssignmentByID(db *gorm.DB, id int64) (*entity.TherapistAssignment, error)
	// FindSchedule lists a therapist's assignments on a calendar day.
	FindSchedule(db *gorm.DB, therapistID uuid.UUID, date time.Time) ([]entity.TherapistAssignment, error)
	// Complete marks a pending assignment done. Returns affected rows:
	// 0 means it was already completed.
	Complete(db *gorm.DB, id int64) (int64, error)
	CountPending(db *gorm.DB, therapistID *uuid.UUID) (int64, error)
}
