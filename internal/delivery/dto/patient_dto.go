package dto

import (
	"time"
)

// Request DTOs

// RegisterPatientRequest creates a patient plus the full first-visit
// chain: appointment, OPD visit, and registration bill.
type RegisterPatientRequest struct {
	FullName         string `json:"full_name" validate:"required,min=2"`
	Age              int    `json:"age" validate:"required,gte=0,lte=130"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female Other"`
	Mobile           string `json:"mobile" validate:"required,mobile"`
	Aadhaar          string `json:"aadhaar" validate:"required,len=12"`
	Address          string `json:"address" validate:"required"`
	DepartmentID     int    `json:"department_id" validate:"required,min=1"`
	SubDepartmentID  *int   `json:"sub_department_id" validate:"omitempty,min=1"`
	DoctorID         string `json:"doctor_id" validate:"required,uuid"`
	Complaint        string `json:"complaint" validate:"required"`
	ConsultationDate string `json:"consultation_date" validate:"required"` // Format: YYYY-MM-DD
}

// StartVisitRequest opens a new visit for an already registered patient.
type StartVisitRequest struct {
	DepartmentID    int    `json:"department_id" validate:"required,min=1"`
	SubDepartmentID *int   `json:"sub_department_id" validate:"omitempty,min=1"`
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	VisitType       string `json:"visit_type" validate:"required,oneof=OPD IPD"`
	ScheduledAt     string `json:"scheduled_at" validate:"required"` // Format: YYYY-MM-DD
	Notes           string `json:"notes" validate:"omitempty"`
}

// UpdatePatientRequest corrects demographics; the UHID never changes.
type UpdatePatientRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Age      int    `json:"age" validate:"required,gte=0,lte=130"`
	Gender   string `json:"gender" validate:"required,oneof=Male Female Other"`
	Mobile   string `json:"mobile" validate:"required,mobile"`
	Aadhaar  string `json:"aadhaar" validate:"required,len=12"`
	Address  string `json:"address" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	UHID      string    `json:"uhid"`
	FullName  string    `json:"full_name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Mobile    string    `json:"mobile"`
	Aadhaar   string    `json:"aadhaar"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type AppointmentResponse struct {
	ID              int64  `json:"id"`
	UHID            string `json:"uhid"`
	DepartmentID    int    `json:"department_id"`
	SubDepartmentID *int   `json:"sub_department_id,omitempty"`
	DoctorID        string `json:"doctor_id"`
	DoctorName      string `json:"doctor_name,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
}

type OPDVisitResponse struct {
	OPDNo         string    `json:"opd_no"`
	UHID          string    `json:"uhid"`
	AppointmentID int64     `json:"appointment_id"`
	VisitDate     string    `json:"visit_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegistrationResponse reports every row the registration chain created.
type RegistrationResponse struct {
	Patient     PatientResponse        `json:"patient"`
	Appointment AppointmentResponse    `json:"appointment"`
	OPDVisit    *OPDVisitResponse      `json:"opd_visit,omitempty"`
	Bill        *BillingRecordResponse `json:"bill,omitempty"`
}

// VisitResponse reports the rows created for a returning patient's visit.
type VisitResponse struct {
	Appointment AppointmentResponse    `json:"appointment"`
	OPDVisit    *OPDVisitResponse      `json:"opd_visit,omitempty"`
	Bill        *BillingRecordResponse `json:"bill,omitempty"`
}
