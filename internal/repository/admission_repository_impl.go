package repository

import (
	"errors"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type admissionRepository struct{}

func NewAdmissionRepository() domainRepo.AdmissionRepository {
	return &admissionRepository{}
}

func (r *admissionRepository) Create(db *gorm.DB, admission *entity.IPDAdmission) error {
	return db.Create(admission).Error
}

func (r *admissionRepository) FindByIPDNo(db *gorm.DB, ipdNo string) (*entity.IPDAdmission, error) {
	var admission entity.IPDAdmission
	err := db.Preload("Patient").Preload("Doctor").Preload("Bed").
		Where("ipd_no = ?", ipdNo).First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.IPDAdmission, error) {
	var admissions []entity.IPDAdmission
	query := db.Preload("Patient").Preload("Doctor").Preload("Bed")
	if activeOnly {
		query = query.Where("discharge_date IS NULL")
	}
	err := query.Order("admission_date DESC, created_at DESC").Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) NumbersWithPrefix(db *gorm.DB, prefix string) ([]string, error) {
	var numbers []string
	err := db.Model(&entity.IPDAdmission{}).
		Where("ipd_no LIKE ?", prefix+"%").
		Pluck("ipd_no", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// Discharge is conditional on the stay still being active so a double
// discharge loses with zero affected rows instead of moving the date.
func (r *admissionRepository) Discharge(db *gorm.DB, ipdNo string, date time.Time) (int64, error) {
	result := db.Model(&entity.IPDAdmission{}).
		Where("ipd_no = ? AND discharge_date IS NULL", ipdNo).
		Update("discharge_date", date.Format("2006-01-02"))
	return result.RowsAffected, result.Error
}

func (r *admissionRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.IPDAdmission{}).
		Where("discharge_date IS NULL").
		Count(&count).Error
	return count, err
}

type admissionRequestRepository struct{}

func NewAdmissionRequestRepository() domainRepo.AdmissionRequestRepository {
	return &admissionRequestRepository{}
}

func (r *admissionRequestRepository) Create(db *gorm.DB, request *entity.OPDToIPDRequest) error {
	return db.Create(request).Error
}

func (r *admissionRequestRepository) FindByID(db *gorm.DB, id int64) (*entity.OPDToIPDRequest, error) {
	var request entity.OPDToIPDRequest
	err := db.Preload("Patient").Preload("Doctor").Preload("OPDVisit").
		Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *admissionRequestRepository) FindAll(db *gorm.DB) ([]entity.OPDToIPDRequest, error) {
	var requests []entity.OPDToIPDRequest
	err := db.Preload("Patient").Preload("Doctor").Preload("OPDVisit").
		Order("requested_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Decide flips a pending request to its final status. The status guard
// makes two concurrent decisions race safely: the loser affects no rows.
func (r *admissionRequestRepository) Decide(db *gorm.DB, id int64, status entity.AdmissionRequestStatus, decidedBy uuid.UUID, at time.Time, notes string) (int64, error) {
	result := db.Model(&entity.OPDToIPDRequest{}).
		Where("id = ? AND status = ?", id, entity.AdmissionRequestPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": decidedBy,
			"approved_at": at,
			"notes":       notes,
		})
	return result.RowsAffected, result.Error
}

func (r *admissionRequestRepository) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.OPDToIPDRequest{}).
		Where("status = ?", entity.AdmissionRequestPending).
		Count(&count).Error
	return count, err
}
