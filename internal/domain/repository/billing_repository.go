package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type BillingRepository interface {
	CreateRecord(db *gorm.DB, record *entity.BillingRecord) error
	FindRecordsByOPDNo(db *gorm.DB, opdNo string) ([]entity.BillingRecord, error)
	CreateIPDBill(db *gorm.DB, bill *entity.IPDBill) error
	FindIPDBillsByIPDNo(db *gorm.DB, ipdNo string) ([]entity.IPDBill, error)
}
