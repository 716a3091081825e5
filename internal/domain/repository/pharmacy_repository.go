package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PharmacyRepository interface {
	CreateMedication(db *gorm.DB, medication *entity.Medication) error
	FindMedicationsByVisit(db *gorm.DB, visitType entity.VisitType, visitNo string) ([]entity.Medication, error)

	CreateRequest(db *gorm.DB, request *entity.MedicationRequest) error
	FindRequestByID(db *gorm.DB, id int64) (*entity.MedicationRequest, error)
	FindRequestsByStatus(db *gorm.DB, status entity.MedicationRequestStatus) ([]entity.MedicationRequest, error)
	// Dispense stamps the pharmacist on a pending request. Returns
	// affected rows: 0 means it was already dispensed.
	Dispense(db *gorm.DB, id int64, pharmacistID uuid.UUID) (int64, error)
	CountPendingRequests(db *gorm.DB) (int64, error)
}
