package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Admission lifecycle states derived from the discharge date
const (
	AdmissionStatusActive     = "active"
	AdmissionStatusDischarged = "discharged"
)

// IPDAdmission is an inpatient stay, keyed by a day-bucketed IPD number
// (IPD-20250115-0001). The discharge date is the single source of truth
// for the stay's lifecycle: null means the patient is still admitted.
type IPDAdmission struct {
	IPDNo           string          `gorm:"column:ipd_no;type:varchar(30);primaryKey" json:"ipd_no"`
	OPDNo           *string         `gorm:"column:opd_no;type:varchar(30);index" json:"opd_no,omitempty"`
	UHID            string          `gorm:"type:varchar(30);not null;index" json:"uhid"`
	DoctorID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	BedID           *int            `gorm:"index" json:"bed_id,omitempty"`
	AdmissionReason string          `gorm:"type:text" json:"admission_reason"`
	DepositAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"deposit_amount"`
	AdmissionDate   time.Time       `gorm:"type:date;not null;index" json:"admission_date"`
	DischargeDate   *time.Time      `gorm:"type:date;index" json:"discharge_date,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:UHID;references:UHID" json:"patient,omitempty"`
	Doctor  Staff   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Bed     *Bed    `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

func (IPDAdmission) TableName() string {
	return "ipd_admissions"
}

// IsDischarged reports whether the stay has ended. A non-null discharge
// date is the sole signal; no separate status column exists.
func (a *IPDAdmission) IsDischarged() bool {
	return a.DischargeDate != nil
}

// Status derives the lifecycle state for API responses.
func (a *IPDAdmission) Status() string {
	if a.IsDischarged() {
		return AdmissionStatusDischarged
	}
	return AdmissionStatusActive
}

// Discharge stamps the discharge date. Idempotence is enforced by the
// usecase, not here.
func (a *IPDAdmission) Discharge(at time.Time) {
	a.DischargeDate = &at
}
