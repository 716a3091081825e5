package repository

import (
	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) CreateRecord(db *gorm.DB, record *entity.BillingRecord) error {
	return db.Create(record).Error
}

func (r *billingRepository) FindRecordsByOPDNo(db *gorm.DB, opdNo string) ([]entity.BillingRecord, error) {
	var records []entity.BillingRecord
	err := db.Where("opd_no = ?", opdNo).
		Order("bill_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *billingRepository) CreateIPDBill(db *gorm.DB, bill *entity.IPDBill) error {
	return db.Create(bill).Error
}

func (r *billingRepository) FindIPDBillsByIPDNo(db *gorm.DB, ipdNo string) ([]entity.IPDBill, error) {
	var bills []entity.IPDBill
	err := db.Where("ipd_no = ?", ipdNo).
		Order("bill_date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
