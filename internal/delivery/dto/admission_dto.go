package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateAdmissionRequestRequest is a doctor's OPD-to-IPD referral.
type CreateAdmissionRequestRequest struct {
	OPDNo  string `json:"opd_no" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

// ApproveAdmissionRequest carries the admission details the receptionist
// fills in when approving a referral.
type ApproveAdmissionRequest struct {
	BedID           int             `json:"bed_id" validate:"required,min=1"`
	AdmissionReason string          `json:"admission_reason" validate:"required"`
	DepositAmount   decimal.Decimal `json:"deposit_amount" validate:"omitempty"`
	Notes           string          `json:"notes" validate:"omitempty"`
}

type RejectAdmissionRequest struct {
	Notes string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type BedResponse struct {
	ID         int    `json:"id"`
	Ward       string `json:"ward"`
	RoomNumber string `json:"room_number"`
	BedNumber  string `json:"bed_number"`
	Occupied   bool   `json:"occupied"`
}

type BedListResponse struct {
	Beds  []BedResponse `json:"beds"`
	Total int           `json:"total"`
}

type AdmissionResponse struct {
	IPDNo           string          `json:"ipd_no"`
	OPDNo           *string         `json:"opd_no,omitempty"`
	UHID            string          `json:"uhid"`
	PatientName     string          `json:"patient_name,omitempty"`
	DoctorID        string          `json:"doctor_id"`
	DoctorName      string          `json:"doctor_name,omitempty"`
	Bed             *BedResponse    `json:"bed,omitempty"`
	AdmissionReason string          `json:"admission_reason"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	AdmissionDate   string          `json:"admission_date"`
	DischargeDate   *string         `json:"discharge_date,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AdmissionListResponse struct {
	Admissions []AdmissionResponse `json:"admissions"`
	Total      int                 `json:"total"`
}

type AdmissionRequestResponse struct {
	ID          int64      `json:"id"`
	OPDNo       string     `json:"opd_no"`
	UHID        string     `json:"uhid"`
	PatientName string     `json:"patient_name,omitempty"`
	DoctorID    string     `json:"doctor_id"`
	DoctorName  string     `json:"doctor_name,omitempty"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ApprovedBy  *string    `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

type AdmissionRequestListResponse struct {
	Requests []AdmissionRequestResponse `json:"requests"`
	Total    int                        `json:"total"`
}
