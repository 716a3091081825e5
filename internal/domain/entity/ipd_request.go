package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionRequestStatus represents the status of an OPD-to-IPD referral
type AdmissionRequestStatus string

const (
	AdmissionRequestPending  AdmissionRequestStatus = "pending"
	AdmissionRequestApproved AdmissionRequestStatus = "approved"
	AdmissionRequestRejected AdmissionRequestStatus = "rejected"
)

// OPDToIPDRequest is a doctor's referral asking to admit an outpatient.
// A receptionist approves it (creating the admission) or rejects it.
type OPDToIPDRequest struct {
	ID          int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	OPDNo       string                 `gorm:"column:opd_no;type:varchar(30);not null;index" json:"opd_no"`
	UHID        string                 `gorm:"type:varchar(30);not null;index" json:"uhid"`
	DoctorID    uuid.UUID              `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Reason      string                 `gorm:"type:text" json:"reason"`
	Status      AdmissionRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes       string                 `gorm:"type:text" json:"notes,omitempty"`
	RequestedAt time.Time              `gorm:"autoCreateTime" json:"requested_at"`
	ApprovedBy  *uuid.UUID             `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt  *time.Time             `json:"approved_at,omitempty"`

	// Relationships
	Patient  Patient  `gorm:"foreignKey:UHID;references:UHID" json:"patient,omitempty"`
	Doctor   Staff    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	OPDVisit OPDVisit `gorm:"foreignKey:OPDNo;references:OPDNo" json:"opd_visit,omitempty"`
}

func (OPDToIPDRequest) TableName() string {
	return "opd_to_ipd_requests"
}

// IsPending checks if the request still awaits a decision
func (r *OPDToIPDRequest) IsPending() bool {
	return r.Status == AdmissionRequestPending
}
