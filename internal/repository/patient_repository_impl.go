package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByUHID(db *gorm.DB, uhid string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("uhid = ?", uhid).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByMobile(db *gorm.DB, mobile string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("mobile = ?", mobile).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// UHIDsWithPrefix lists existing identifiers in a bucket. Used to seed the
// bucket counter from rows that predate the sequence table.
func (r *patientRepository) UHIDsWithPrefix(db *gorm.DB, prefix string) ([]string, error) {
	var uhids []string
	err := db.Model(&entity.Patient{}).
		Where("uhid LIKE ?", prefix+"%").
		Pluck("uhid", &uhids).Error
	if err != nil {
		return nil, err
	}
	return uhids, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
