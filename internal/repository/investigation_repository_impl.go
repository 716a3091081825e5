package repository

import (
	"errors"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type investigationRepository struct{}

func NewInvestigationRepository() domainRepo.InvestigationRepository {
	return &investigationRepository{}
}

func (r *investigationRepository) Create(db *gorm.DB, investigation *entity.Investigation) error {
	return db.Create(investigation).Error
}

func (r *investigationRepository) FindByID(db *gorm.DB, id int64) (*entity.Investigation, error) {
	var investigation entity.Investigation
	err := db.Preload("Doctor").Preload("Technician").
		Where("id = ?", id).First(&investigation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investigation, nil
}

func (r *investigationRepository) FindByStatus(db *gorm.DB, status entity.InvestigationStatus) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	query := db.Preload("Doctor").Where("status = ?", status)
	if status == entity.InvestigationPending {
		query = query.Order("CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END").
			Order("scheduled_date ASC NULLS LAST")
	} else {
		query = query.Preload("Technician").Order("completed_at DESC")
	}
	if err := query.Find(&investigations).Error; err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *investigationRepository) FindByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	query := db.Preload("Doctor").Order("created_at DESC")
	if visitType == entity.VisitTypeIPD {
		query = query.Where("ipd_no = ?", visitNo)
	} else {
		query = query.Where("opd_no = ?", visitNo)
	}
	if err := query.Find(&investigations).Error; err != nil {
		return nil, err
	}
	return investigations, nil
}

// Complete flips an investigation while it is still pending, so a double
// completion affects zero rows.
func (r *investigationRepository) Complete(db *gorm.DB, id int64, technicianID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Investigation{}).
		Where("id = ? AND status = ?", id, entity.InvestigationPending).
		Updates(map[string]interface{}{
			"status":       entity.InvestigationCompleted,
			"completed_by": technicianID,
			"completed_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *investigationRepository) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Investigation{}).
		Where("status = ?", entity.InvestigationPending).
		Count(&count).Error
	return count, err
}
