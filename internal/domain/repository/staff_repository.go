package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByEmail(db *gorm.DB, email string) (*entity.Staff, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Staff, error)
	FindByRole(db *gorm.DB, role entity.StaffRole) ([]entity.Staff, error)
	FindDoctors(db *gorm.DB, departmentID, subDepartmentID *int) ([]entity.Staff, error)
	Update(db *gorm.DB, staff *entity.Staff) error
}
