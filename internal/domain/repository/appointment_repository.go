package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByUHID(db *gorm.DB, uhid string) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
	// Cancel flips a pending appointment to cancelled. Returns affected
	// rows: 0 means it was already seen or cancelled.
	Cancel(db *gorm.DB, id int64) (int64, error)
	CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error)
}
