package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) Create(db *gorm.DB, staff *entity.Staff) error {
	return db.Create(staff).Error
}

func (r *staffRepository) FindByEmail(db *gorm.DB, email string) (*entity.Staff, error) {
	var staff entity.Staff
	err := db.Where("email = ?", email).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Staff, error) {
	var staff entity.Staff
	err := db.Preload("Department").Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByRole(db *gorm.DB, role entity.StaffRole) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := db.Where("role = ? AND is_active = ?", role, true).
		Order("full_name ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) FindDoctors(db *gorm.DB, departmentID, subDepartmentID *int) ([]entity.Staff, error) {
	var doctors []entity.Staff
	query := db.Where("role = ? AND is_active = ?", entity.RoleDoctor, true)
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	if subDepartmentID != nil {
		query = query.Where("sub_department_id = ?", *subDepartmentID)
	}
	err := query.Order("full_name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *staffRepository) Update(db *gorm.DB, staff *entity.Staff) error {
	return db.Save(staff).Error
}
