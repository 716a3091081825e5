package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one prescribed line for a visit: drug, dosage, frequency
// and course dates. Dispense requests reference it.
type Medication struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	OPDNo        *string    `gorm:"column:opd_no;type:varchar(30);index" json:"opd_no,omitempty"`
	IPDNo        *string    `gorm:"column:ipd_no;type:varchar(30);index" json:"ipd_no,omitempty"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Dosage       string     `gorm:"type:varchar(100)" json:"dosage"`
	Frequency    string     `gorm:"type:varchar(100)" json:"frequency"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
	PrescribedBy uuid.UUID  `gorm:"type:uuid;not null;index" json:"prescribed_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Prescriber Staff `gorm:"foreignKey:PrescribedBy" json:"prescriber,omitempty"`
}

func (Medication) TableName() string {
	return "medications"
}

// MedicationRequestStatus represents the status of a dispense request
type MedicationRequestStatus string

const (
	MedicationRequestPending   MedicationRequestStatus = "pending"
	MedicationRequestDispensed MedicationRequestStatus = "dispensed"
)

// MedicationRequest queues a prescription for the pharmacy. Dispensing
// stamps the pharmacist and time on the request itself, so the dispensed
// listing is the same table filtered by status.
type MedicationRequest struct {
	ID           int64                   `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicationID int64                   `gorm:"not null;index" json:"medication_id"`
	OPDNo        *string                 `gorm:"column:opd_no;type:varchar(30);index" json:"opd_no,omitempty"`
	IPDNo        *string                 `gorm:"column:ipd_no;type:varchar(30);index" json:"ipd_no,omitempty"`
	Status       MedicationRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestDate  time.Time               `gorm:"not null" json:"request_date"`
	DispensedBy  *uuid.UUID              `gorm:"type:uuid" json:"dispensed_by,omitempty"`
	DispensedAt  *time.Time              `json:"dispensed_at,omitempty"`
	CreatedAt    time.Time               `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Medication Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
	Pharmacist *Staff     `gorm:"foreignKey:DispensedBy" json:"pharmacist,omitempty"`
}

func (MedicationRequest) TableName() string {
	return "medication_requests"
}

// IsDispensed checks if the pharmacy has already handled this request
func (m *MedicationRequest) IsDispensed() bool {
	return m.Status == MedicationRequestDispensed
}

// Dispense stamps the pharmacist and time and flips the status
func (m *MedicationRequest) Dispense(pharmacistID uuid.UUID, at time.Time) {
	m.Status = MedicationRequestDispensed
	m.DispensedBy = &pharmacistID
	m.DispensedAt = &at
}
