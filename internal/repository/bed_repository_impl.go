package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type bedRepository struct{}

func NewBedRepository() domainRepo.BedRepository {
	return &bedRepository{}
}

func (r *bedRepository) FindByID(db *gorm.DB, id int) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *bedRepository) FindAvailable(db *gorm.DB, ward string) ([]entity.Bed, error) {
	var beds []entity.Bed
	query := db.Where("occupied = ?", false)
	if ward != "" {
		query = query.Where("ward = ?", ward)
	}
	err := query.Order("ward ASC, room_number ASC, bed_number ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

// Occupy claims the bed with a conditional update so two concurrent
// admissions cannot both win it.
func (r *bedRepository) Occupy(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND occupied = ?", id, false).
		Update("occupied", true)
	return result.RowsAffected, result.Error
}

func (r *bedRepository) Release(db *gorm.DB, id int) error {
	return db.Model(&entity.Bed{}).
		Where("id = ?", id).
		Update("occupied", false).Error
}
