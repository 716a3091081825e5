package dto

import "time"

// Request DTOs

// ProcedureAdvice is one therapy recommended in the treatment plan.
type ProcedureAdvice struct {
	Name         string `json:"name" validate:"required"`
	Requirements string `json:"requirements" validate:"omitempty"`
}

type CreateCaseSheetRequest struct {
	VisitType            string            `json:"visit_type" validate:"required,oneof=OPD IPD"`
	VisitNo              string            `json:"visit_no" validate:"required"`
	ChiefComplaints      string            `json:"chief_complaints" validate:"required"`
	AssociatedComplaints string            `json:"associated_complaints" validate:"omitempty"`
	History              string            `json:"history" validate:"omitempty"`
	Examination          string            `json:"examination" validate:"omitempty"`
	Diagnosis            string            `json:"diagnosis" validate:"required"`
	TreatmentPlan        string            `json:"treatment_plan" validate:"omitempty"`
	MedicationsAdvised   []string          `json:"medications_advised" validate:"omitempty,dive,required"`
	ProceduresAdvised    []ProcedureAdvice `json:"procedures_advised" validate:"omitempty,dive"`
}

// Response DTOs

type ProcedureEntryResponse struct {
	ID            int64  `json:"id"`
	VisitType     string `json:"visit_type"`
	VisitNo       string `json:"visit_no"`
	ProcedureName string `json:"procedure_name"`
	Requirements  string `json:"requirements,omitempty"`
}

type CaseSheetResponse struct {
	ID                   int64                    `json:"id"`
	VisitType            string                   `json:"visit_type"`
	VisitNo              string                   `json:"visit_no"`
	UHID                 string                   `json:"uhid"`
	DoctorID             *string                  `json:"doctor_id,omitempty"`
	DoctorName           string                   `json:"doctor_name,omitempty"`
	ChiefComplaints      string                   `json:"chief_complaints"`
	AssociatedComplaints string                   `json:"associated_complaints,omitempty"`
	History              string                   `json:"history,omitempty"`
	Examination          string                   `json:"examination,omitempty"`
	Diagnosis            string                   `json:"diagnosis"`
	TreatmentPlan        string                   `json:"treatment_plan,omitempty"`
	MedicationsAdvised   []string                 `json:"medications_advised,omitempty"`
	Procedures           []ProcedureEntryResponse `json:"procedures,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
}

type CaseSheetListResponse struct {
	Sheets []CaseSheetResponse `json:"sheets"`
	Total  int                 `json:"total"`
}
