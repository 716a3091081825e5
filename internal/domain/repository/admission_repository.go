package repository

import (
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdmissionRepository interface {
	Create(db *gorm.DB, admission *entity.IPDAdmission) error
	FindByIPDNo(db *gorm.DB, ipdNo string) (*entity.IPDAdmission, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.IPDAdmission, error)
	NumbersWithPrefix(db *gorm.DB, prefix string) ([]string, error)
	// Discharge stamps the discharge date only if the stay is still
	// active. Returns affected rows: 0 means already discharged.
	Discharge(db *gorm.DB, ipdNo string, date time.Time) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
}

type AdmissionRequestRepository interface {
	Create(db *gorm.DB, request *entity.OPDToIPDRequest) error
	FindByID(db *gorm.DB, id int64) (*entity.OPDToIPDRequest, error)
	FindAll(db *gorm.DB) ([]entity.OPDToIPDRequest, error)
	// Decide moves a pending request to approved or rejected. Returns
	// affected rows: 0 means the request was already decided.
	Decide(db *gorm.DB, id int64, status entity.AdmissionRequestStatus, decidedBy uuid.UUID, at time.Time, notes string) (int64, error)
	CountPending(db *gorm.DB) (int64, error)
}
