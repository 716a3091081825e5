package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type caseSheetRepository struct{}

func NewCaseSheetRepository() domainRepo.CaseSheetRepository {
	return &caseSheetRepository{}
}

func (r *caseSheetRepository) Create(db *gorm.DB, sheet *entity.CaseSheet) error {
	return db.Create(sheet).Error
}

func (r *caseSheetRepository) FindByID(db *gorm.DB, id int64) (*entity.CaseSheet, error) {
	var sheet entity.CaseSheet
	err := db.Preload("Patient").Preload("Doctor").
		Where("id = ?", id).First(&sheet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sheet, nil
}

func (r *caseSheetRepository) FindByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.CaseSheet, error) {
	var sheets []entity.CaseSheet
	err := db.Preload("Doctor").
		Where("visit_type = ? AND visit_no = ?", visitType, visitNo).
		Order("created_at DESC").
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}
	return sheets, nil
}

func (r *caseSheetRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Delete(&entity.CaseSheet{}, id)
	return result.RowsAffected, result.Error
}
