package repository

import (
	"errors"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pharmacyRepository struct{}

func NewPharmacyRepository() domainRepo.PharmacyRepository {
	return &pharmacyRepository{}
}

func (r *pharmacyRepository) CreateMedication(db *gorm.DB, medication *entity.Medication) error {
	return db.Create(medication).Error
}

func (r *pharmacyRepository) FindMedicationsByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.Medication, error) {
	var medications []entity.Medication
	query := db.Order("created_at ASC")
	if visitType == entity.VisitTypeIPD {
		query = query.Where("ipd_no = ?", visitNo)
	} else {
		query = query.Where("opd_no = ?", visitNo)
	}
	if err := query.Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *pharmacyRepository) CreateRequest(db *gorm.DB, request *entity.MedicationRequest) error {
	return db.Create(request).Error
}

func (r *pharmacyRepository) FindRequestByID(db *gorm.DB, id int64) (*entity.MedicationRequest, error) {
	var request entity.MedicationRequest
	err := db.Preload("Medication").Preload("Pharmacist").
		Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *pharmacyRepository) FindRequestsByStatus(db *gorm.DB, status entity.MedicationRequestStatus) ([]entity.MedicationRequest, error) {
	var requests []entity.MedicationRequest
	err := db.Preload("Medication").Preload("Pharmacist").
		Where("status = ?", status).
		Order("request_date DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Dispense flips a request while it is still pending, so a double
// dispense affects zero rows.
func (r *pharmacyRepository) Dispense(db *gorm.DB, id int64, pharmacistID uuid.UUID) (int64, error) {
	result := db.Model(&entity.MedicationRequest{}).
		Where("id = ? AND status = ?", id, entity.MedicationRequestPending).
		Updates(map[string]interface{}{
			"status":       entity.MedicationRequestDispensed,
			"dispensed_by": pharmacistID,
			"dispensed_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *pharmacyRepository) CountPendingRequests(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.MedicationRequest{}).
		Where("status = ?", entity.MedicationRequestPending).
		Count(&count).Error
	return count, err
}
