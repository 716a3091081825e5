package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcedureEntry is one advised procedure (therapy) for a visit, raised
// from a case sheet's treatment plan. Therapist assignments reference it.
type ProcedureEntry struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitType     VisitType `gorm:"type:varchar(10);not null" json:"visit_type"`
	VisitNo       string    `gorm:"type:varchar(30);not null;index" json:"visit_no"`
	ProcedureName string    `gorm:"type:varchar(255);not null" json:"procedure_name"`
	Requirements  string    `gorm:"type:text" json:"requirements,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProcedureEntry) TableName() string {
	return "procedure_entries"
}

// TherapyStatus represents the status of a therapist assignment
type TherapyStatus string

const (
	TherapyStatusPending   TherapyStatus = "pending"
	TherapyStatusCompleted TherapyStatus = "completed"
)

// TherapistAssignment schedules a therapist to perform a procedure for a
// visit at a given date and time.
type TherapistAssignment struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ProcedureEntryID int64         `gorm:"not null;index" json:"procedure_entry_id"`
	VisitNo          string        `gorm:"type:varchar(30);not null;index" json:"visit_no"`
	TherapistID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"therapist_id"`
	DoctorID         *uuid.UUID    `gorm:"type:uuid" json:"doctor_id,omitempty"`
	ScheduledAt      time.Time     `gorm:"not null;index" json:"scheduled_at"`
	Status           TherapyStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Procedure ProcedureEntry `gorm:"foreignKey:ProcedureEntryID" json:"procedure,omitempty"`
	Therapist Staff          `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
	Doctor    *Staff         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (TherapistAssignment) TableName() string {
	return "therapist_assignments"
}

// IsCompleted checks if the session has been marked done
func (t *TherapistAssignment) IsCompleted() bool {
	return t.Status == TherapyStatusCompleted
}

// Complete marks the session done
func (t *TherapistAssignment) Complete() {
	t.Status = TherapyStatusCompleted
}
