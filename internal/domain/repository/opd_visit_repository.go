package repository

import (
	"time"

	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OPDVisitRepository interface {
	Create(db *gorm.DB, visit *entity.OPDVisit) error
	FindByOPDNo(db *gorm.DB, opdNo string) (*entity.OPDVisit, error)
	FindByUHID(db *gorm.DB, uhid string) ([]entity.OPDVisit, error)
	NumbersWithPrefix(db *gorm.DB, prefix string) ([]string, error)
	CountByDate(db *gorm.DB, date time.Time) (int64, error)

	CreateFollowUp(db *gorm.DB, followUp *entity.OPDFollowUp) error
	FindFollowUpsByOPDNo(db *gorm.DB, opdNo string) ([]entity.OPDFollowUp, error)
}
