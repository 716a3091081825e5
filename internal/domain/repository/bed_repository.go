package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type BedRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Bed, error)
	FindAvailable(db *gorm.DB, ward string) ([]entity.Bed, error)
	// Occupy claims a bed only if it is currently free. Returns affected
	// rows: 0 means another admission got there first.
	Occupy(db *gorm.DB, id int) (int64, error)
	Release(db *gorm.DB, id int) error
}
