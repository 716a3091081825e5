package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CaseSheetRepository interface {
	Create(db *gorm.DB, sheet *entity.CaseSheet) error
	FindByID(db *gorm.DB, id int64) (*entity.CaseSheet, error)
	// FindByVisit returns every sheet for a visit, newest first.
	FindByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.CaseSheet, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
