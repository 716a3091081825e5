package repository

import (
	"errors"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type therapyRepository struct{}

func NewTherapyRepository() domainRepo.TherapyRepository {
	return &therapyRepository{}
}

func (r *therapyRepository) CreateProcedure(db *gorm.DB, procedure *entity.ProcedureEntry) error {
	return db.Create(procedure).Error
}

func (r *therapyRepository) FindProcedureByID(db *gorm.DB, id int64) (*entity.ProcedureEntry, error) {
	var procedure entity.ProcedureEntry
	err := db.Where("id = ?", id).First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *therapyRepository) FindProceduresByVisit(db *gorm.DB, visitNo string) ([]entity.ProcedureEntry, error) {
	var procedures []entity.ProcedureEntry
	err := db.Where("visit_no = ?", visitNo).
		Order("created_at ASC").
		Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *therapyRepository) CreateAssignment(db *gorm.DB, assignment *entity.TherapistAssignment) error {
	return db.Create(assignment).Error
}

func (r *therapyRepository) FindAssignmentByID(db *gorm.DB, id int64) (*entity.TherapistAssignment, error) {
	var assignment entity.TherapistAssignment
	err := db.Preload("Procedure").Preload("Therapist").Preload("Doctor").
		Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *therapyRepository) FindSchedule(db *gorm.DB, therapistID uuid.UUID, date time.Time) ([]entity.TherapistAssignment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var assignments []entity.TherapistAssignment
	err := db.Preload("Procedure").
		Where("therapist_id = ? AND scheduled_at >= ? AND scheduled_at < ?", therapistID, dayStart, dayEnd).
		Order("scheduled_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Complete marks an assignment done only while it is still pending, so a
// double completion affects zero rows.
func (r *therapyRepository) Complete(db *gorm.DB, id int64) (int64, error) {
	result := db.Model(&entity.TherapistAssignment{}).
		Where("id = ? AND status = ?", id, entity.TherapyStatusPending).
		Update("status", entity.TherapyStatusCompleted)
	return result.RowsAffected, result.Error
}

func (r *therapyRepository) CountPending(db *gorm.DB, therapistID *uuid.UUID) (int64, error) {
	var count int64
	query := db.Model(&entity.TherapistAssignment{}).
		Where("status = ?", entity.TherapyStatusPending)
	if therapistID != nil {
		query = query.Where("therapist_id = ?", *therapistID)
	}
	err := query.Count(&count).Error
	return count, err
}
