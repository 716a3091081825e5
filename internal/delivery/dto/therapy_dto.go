package dto

import "time"

// Request DTOs

type ScheduleTherapyRequest struct {
	ProcedureEntryID int64   `json:"procedure_entry_id" validate:"required,min=1"`
	TherapistID      string  `json:"therapist_id" validate:"required,uuid"`
	DoctorID         *string `json:"doctor_id" validate:"omitempty,uuid"`
	ScheduledAt      string  `json:"scheduled_at" validate:"required"` // Format: RFC 3339
}

// Response DTOs

type TherapyResponse struct {
	ID            int64     `json:"id"`
	VisitNo       string    `json:"visit_no"`
	ProcedureName string    `json:"procedure_name"`
	TherapistID   string    `json:"therapist_id"`
	TherapistName string    `json:"therapist_name,omitempty"`
	DoctorID      *string   `json:"doctor_id,omitempty"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type TherapyListResponse struct {
	Therapies []TherapyResponse `json:"therapies"`
	Total     int               `json:"total"`
}
