package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingRecord is a flat OPD charge: one description, one amount.
// The registration fee billed on every new visit is a BillingRecord.
type BillingRecord struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OPDNo       string          `gorm:"column:opd_no;type:varchar(30);not null;index" json:"opd_no"`
	BillDate    time.Time       `gorm:"not null" json:"bill_date"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	OPDVisit OPDVisit `gorm:"foreignKey:OPDNo;references:OPDNo" json:"opd_visit,omitempty"`
}

func (BillingRecord) TableName() string {
	return "billing_records"
}

// IPDBill itemizes inpatient charges. The total is computed server-side
// from the six line items and persisted; clients never supply it.
type IPDBill struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	IPDNo           string          `gorm:"column:ipd_no;type:varchar(30);not null;index" json:"ipd_no"`
	BedCharge       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"bed_charge"`
	NursingCharge   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"nursing_charge"`
	DoctorCharge    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"doctor_charge"`
	ProcedureCharge decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"procedure_charge"`
	SurgeryCharge   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"surgery_charge"`
	OtherCharge     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"other_charge"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	BillDate        time.Time       `gorm:"not null" json:"bill_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Admission IPDAdmission `gorm:"foreignKey:IPDNo;references:IPDNo" json:"admission,omitempty"`
}

func (IPDBill) TableName() string {
	return "ipd_bills"
}

// ChargesTotal sums the six itemized charges.
func (b *IPDBill) ChargesTotal() decimal.Decimal {
	return b.BedCharge.
		Add(b.NursingCharge).
		Add(b.DoctorCharge).
		Add(b.ProcedureCharge).
		Add(b.SurgeryCharge).
		Add(b.OtherCharge)
}
