package dto

import "time"

// Request DTOs

// PrescribeMedicationRequest creates a prescription line and queues it
// for the pharmacy in one step.
type PrescribeMedicationRequest struct {
	VisitType string `json:"visit_type" validate:"required,oneof=OPD IPD"`
	VisitNo   string `json:"visit_no" validate:"required"`
	Name      string `json:"name" validate:"required,min=2"`
	Dosage    string `json:"dosage" validate:"omitempty,max=100"`
	Frequency string `json:"frequency" validate:"omitempty,max=100"`
	StartDate string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
	Notes     string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicationResponse struct {
	ID           int64     `json:"id"`
	OPDNo        *string   `json:"opd_no,omitempty"`
	IPDNo        *string   `json:"ipd_no,omitempty"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Frequency    string    `json:"frequency,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	PrescribedBy string    `json:"prescribed_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}

type MedicationRequestResponse struct {
	ID             int64      `json:"id"`
	MedicationID   int64      `json:"medication_id"`
	OPDNo          *string    `json:"opd_no,omitempty"`
	IPDNo          *string    `json:"ipd_no,omitempty"`
	MedicationName string     `json:"medication_name,omitempty"`
	Dosage         string     `json:"dosage,omitempty"`
	Frequency      string     `json:"frequency,omitempty"`
	Status         string     `json:"status"`
	RequestDate    time.Time  `json:"request_date"`
	DispensedBy    *string    `json:"dispensed_by,omitempty"`
	PharmacistName string     `json:"pharmacist_name,omitempty"`
	DispensedAt    *time.Time `json:"dispensed_at,omitempty"`
}

type MedicationRequestListResponse struct {
	Requests []MedicationRequestResponse `json:"requests"`
	Total    int                         `json:"total"`
}
