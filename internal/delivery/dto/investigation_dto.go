package dto

import "time"

// Request DTOs

// RequestInvestigationRequest orders one or more tests for a visit.
type RequestInvestigationRequest struct {
	VisitType     string   `json:"visit_type" validate:"required,oneof=OPD IPD"`
	VisitNo       string   `json:"visit_no" validate:"required"`
	Tests         []string `json:"tests" validate:"required,min=1,dive,required"`
	ScheduledDate string   `json:"scheduled_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Priority      string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Notes         string   `json:"notes" validate:"omitempty"`
}

// Response DTOs

type InvestigationResponse struct {
	ID             int64      `json:"id"`
	OPDNo          *string    `json:"opd_no,omitempty"`
	IPDNo          *string    `json:"ipd_no,omitempty"`
	Tests          []string   `json:"tests"`
	DoctorID       *string    `json:"doctor_id,omitempty"`
	DoctorName     string     `json:"doctor_name,omitempty"`
	ScheduledDate  *string    `json:"scheduled_date,omitempty"`
	Priority       string     `json:"priority"`
	Notes          string     `json:"notes,omitempty"`
	Status         string     `json:"status"`
	CompletedBy    *string    `json:"completed_by,omitempty"`
	TechnicianName string     `json:"technician_name,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type InvestigationListResponse struct {
	Investigations []InvestigationResponse `json:"investigations"`
	Total          int                     `json:"total"`
}
