package dto

import "time"

// Request DTOs

// CreateFollowUpRequest records a follow-up note for an OPD visit.
type CreateFollowUpRequest struct {
	FollowUpDate string `json:"follow_up_date" validate:"required"` // Format: YYYY-MM-DD
	Notes        string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type FollowUpResponse struct {
	ID           int64     `json:"id"`
	OPDNo        string    `json:"opd_no"`
	FollowUpDate string    `json:"follow_up_date"`
	Notes        string    `json:"notes,omitempty"`
	DoctorID     string    `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type FollowUpListResponse struct {
	FollowUps []FollowUpResponse `json:"follow_ups"`
	Total     int                `json:"total"`
}
