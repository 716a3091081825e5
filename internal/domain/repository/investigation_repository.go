package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvestigationRepository interface {
	Create(db *gorm.DB, investigation *entity.Investigation) error
	FindByID(db *gorm.DB, id int64) (*entity.Investigation, error)
	// FindByStatus lists the technician worklist: pending entries ordered
	// urgent-first then by scheduled date, completed ones newest-first.
	FindByStatus(db *gorm.DB, status entity.InvestigationStatus) ([]entity.Investigation, error)
	FindByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.Investigation, error)
	// Complete stamps the technician on a pending investigation. Returns
	// affected rows: 0 means it was already completed.
	Complete(db *gorm.DB, id int64, technicianID uuid.UUID) (int64, error)
	CountPending(db *gorm.DB) (int64, error)
}
