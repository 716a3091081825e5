package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvestigationStatus represents the status of a requested investigation
type InvestigationStatus string

const (
	InvestigationPending   InvestigationStatus = "pending"
	InvestigationCompleted InvestigationStatus = "completed"
)

// InvestigationPriority orders the technician worklist
type InvestigationPriority string

const (
	PriorityLow    InvestigationPriority = "low"
	PriorityNormal InvestigationPriority = "normal"
	PriorityHigh   InvestigationPriority = "high"
	PriorityUrgent InvestigationPriority = "urgent"
)

// Investigation is a doctor's request for lab or imaging work on a visit.
// Tests holds the ordered test names; technicians work the pending list
// by priority and mark entries completed.
type Investigation struct {
	ID            int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	OPDNo         *string               `gorm:"column:opd_no;type:varchar(30);index" json:"opd_no,omitempty"`
	IPDNo         *string               `gorm:"column:ipd_no;type:varchar(30);index" json:"ipd_no,omitempty"`
	Tests         StringList            `gorm:"type:jsonb;not null" json:"tests"`
	DoctorID      *uuid.UUID            `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	ScheduledDate *time.Time            `gorm:"type:date;index" json:"scheduled_date,omitempty"`
	Priority      InvestigationPriority `gorm:"type:varchar(10);not null;default:'normal';index" json:"priority"`
	Notes         string                `gorm:"type:text" json:"notes"`
	Status        InvestigationStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CompletedBy   *uuid.UUID            `gorm:"type:uuid" json:"completed_by,omitempty"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	CreatedAt     time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor     *Staff `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Technician *Staff `gorm:"foreignKey:CompletedBy" json:"technician,omitempty"`
}

func (Investigation) TableName() string {
	return "investigations"
}

// IsCompleted checks if the technician has finished this investigation
func (i *Investigation) IsCompleted() bool {
	return i.Status == InvestigationCompleted
}

// Complete stamps the technician and time and flips the status
func (i *Investigation) Complete(technicianID uuid.UUID, at time.Time) {
	i.Status = InvestigationCompleted
	i.CompletedBy = &technicianID
	i.CompletedAt = &at
}

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p InvestigationPriority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
