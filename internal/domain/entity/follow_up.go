package entity

import (
	"time"

	"github.com/google/uuid"
)

// OPDFollowUp records a doctor's follow-up note against an existing OPD
// visit: when the patient should return and what to review. Prescriptions
// raised during the follow-up go through the pharmacy workflow.
type OPDFollowUp struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OPDNo        string    `gorm:"column:opd_no;type:varchar(30);not null;index" json:"opd_no"`
	FollowUpDate time.Time `gorm:"type:date;not null" json:"follow_up_date"`
	Notes        string    `gorm:"type:text" json:"notes"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Staff `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (OPDFollowUp) TableName() string {
	return "opd_follow_ups"
}
