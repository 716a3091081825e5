package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUHID(db *gorm.DB, uhid string) (*entity.Patient, error)
	FindByMobile(db *gorm.DB, mobile string) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	UHIDsWithPrefix(db *gorm.DB, prefix string) ([]string, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Count(db *gorm.DB) (int64, error)
}
