package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBillingRecordRequest struct {
	OPDNo       string          `json:"opd_no" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// CreateIPDBillRequest itemizes the six inpatient charges. No total
// field: the server computes and persists it.
type CreateIPDBillRequest struct {
	IPDNo           string          `json:"ipd_no" validate:"required"`
	BedCharge       decimal.Decimal `json:"bed_charge"`
	NursingCharge   decimal.Decimal `json:"nursing_charge"`
	DoctorCharge    decimal.Decimal `json:"doctor_charge"`
	ProcedureCharge decimal.Decimal `json:"procedure_charge"`
	SurgeryCharge   decimal.Decimal `json:"surgery_charge"`
	OtherCharge     decimal.Decimal `json:"other_charge"`
}

// Response DTOs

type BillingRecordResponse struct {
	ID          int64           `json:"id"`
	OPDNo       string          `json:"opd_no"`
	BillDate    time.Time       `json:"bill_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type BillingRecordListResponse struct {
	Records []BillingRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

type IPDBillResponse struct {
	ID              int64           `json:"id"`
	IPDNo           string          `json:"ipd_no"`
	BedCharge       decimal.Decimal `json:"bed_charge"`
	NursingCharge   decimal.Decimal `json:"nursing_charge"`
	DoctorCharge    decimal.Decimal `json:"doctor_charge"`
	ProcedureCharge decimal.Decimal `json:"procedure_charge"`
	SurgeryCharge   decimal.Decimal `json:"surgery_charge"`
	OtherCharge     decimal.Decimal `json:"other_charge"`
	Total           decimal.Decimal `json:"total"`
	BillDate        time.Time       `json:"bill_date"`
}

type IPDBillListResponse struct {
	Bills []IPDBillResponse `json:"bills"`
	Total int               `json:"total"`
}
