package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusSeen      AppointmentStatus = "seen"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a patient to a doctor and department for a requested
// date. Status moves to "seen" when the doctor files the first case sheet
// for the visit.
type Appointment struct {
	ID              int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UHID            string            `gorm:"type:varchar(30);not null;index" json:"uhid"`
	DepartmentID    int               `gorm:"not null;index" json:"department_id"`
	SubDepartmentID *int              `gorm:"index" json:"sub_department_id,omitempty"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	Reason          string            `gorm:"type:text" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:UHID;references:UHID" json:"patient,omitempty"`
	Doctor  Staff   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment has not been seen or cancelled yet.
// Status transitions themselves run as conditional updates in the
// repository so concurrent writers cannot race past each other.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
