package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
}

func NewPatientHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

// Register handles new patient registration
// @Summary Register a new patient
// @Description Register a patient and open the first visit: appointment, OPD number, registration bill
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	registration, err := h.registrationUsecase.RegisterPatient(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid consultation date, use YYYY-MM-DD")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", registration)
}

// StartVisit handles opening a visit for a returning patient
// @Summary Start a visit
// @Description Open a new OPD visit or IPD referral for a registered patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uhid path string true "Patient UHID"
// @Param request body dto.StartVisitRequest true "Start Visit Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{uhid}/visits [post]
func (h *PatientHandler) StartVisit(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	uhid := mux.Vars(r)["uhid"]

	var req dto.StartVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.registrationUsecase.StartVisit(r.Context(), staffID, uhid, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid scheduled date, use YYYY-MM-DD")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to start visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit started successfully", visit)
}

// Search handles the front-desk lookup
// @Summary Search for a patient
// @Description Look up a patient by mobile number (with +91 fallback) or UHID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param q query string true "Mobile number or UHID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/search [get]
func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.BadRequest(w, "Query parameter q is required")
		return
	}

	patient, err := h.registrationUsecase.SearchPatient(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to search patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// GetByUHID handles fetching one patient
// @Summary Get patient
// @Description Get a patient by UHID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param uhid path string true "Patient UHID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{uhid} [get]
func (h *PatientHandler) GetByUHID(w http.ResponseWriter, r *http.Request) {
	uhid := mux.Vars(r)["uhid"]

	patient, err := h.registrationUsecase.GetPatient(r.Context(), uhid)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// List handles listing all patients
// @Summary List patients
// @Description List every registered patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.registrationUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	})
}

// Update handles demographic corrections
// @Summary Update patient
// @Description Correct a patient's demographics; the UHID never changes
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uhid path string true "Patient UHID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{uhid} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	uhid := mux.Vars(r)["uhid"]

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.registrationUsecase.UpdatePatient(r.Context(), uhid, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// ListVisits handles a patient's visit history
// @Summary List patient visits
// @Description List every OPD visit of one patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param uhid path string true "Patient UHID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{uhid}/visits [get]
func (h *PatientHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	uhid := mux.Vars(r)["uhid"]

	visits, err := h.registrationUsecase.GetPatientVisits(r.Context(), uhid)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list visits")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

// CancelAppointment handles cancelling a pending appointment
// @Summary Cancel appointment
// @Description Cancel a pending appointment before the doctor sees the patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.registrationUsecase.CancelAppointment(r.Context(), staffID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotCancellable:
			response.Conflict(w, "Appointment already seen or cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// AddFollowUp handles scheduling an OPD follow-up
// @Summary Add follow-up
// @Description Schedule a follow-up date for an OPD visit
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param opd_no path string true "OPD number"
// @Param request body dto.CreateFollowUpRequest true "Create Follow-Up Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{opd_no}/follow-ups [post]
func (h *PatientHandler) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	opdNo := mux.Vars(r)["opd_no"]

	var req dto.CreateFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	followUp, err := h.registrationUsecase.AddFollowUp(r.Context(), doctorID, opdNo, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid follow-up date, use YYYY-MM-DD")
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		default:
			response.InternalServerError(w, "Failed to add follow-up")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Follow-up added successfully", followUp)
}

// ListFollowUps handles a visit's follow-up history
// @Summary List follow-ups
// @Description List the follow-ups scheduled for an OPD visit
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param opd_no path string true "OPD number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{opd_no}/follow-ups [get]
func (h *PatientHandler) ListFollowUps(w http.ResponseWriter, r *http.Request) {
	opdNo := mux.Vars(r)["opd_no"]

	followUps, err := h.registrationUsecase.ListFollowUps(r.Context(), opdNo)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		default:
			response.InternalServerError(w, "Failed to list follow-ups")
		}
		return
	}

	response.Success(w, http.StatusOK, "Follow-ups retrieved successfully", dto.FollowUpListResponse{
		FollowUps: followUps,
		Total:     len(followUps),
	})
}
