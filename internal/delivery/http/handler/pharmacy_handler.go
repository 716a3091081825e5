package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

// Prescribe handles a doctor prescribing a medication for a visit
// @Summary Prescribe medication
// @Description Record a prescription and queue its dispense request for the pharmacy
// @Tags Pharmacy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PrescribeMedicationRequest true "Prescribe Medication Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pharmacy/medications [post]
func (h *PharmacyHandler) Prescribe(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PrescribeMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.pharmacyUsecase.Prescribe(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to prescribe medication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medication prescribed successfully", request)
}

// ListRequests handles the pharmacist worklist
// @Summary List medication requests
// @Description List dispense requests by status, pending first by default
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending or dispensed (default pending)"
// @Success 200 {object} response.Response
// @Router /pharmacy/requests [get]
func (h *PharmacyHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := entity.MedicationRequestPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = entity.MedicationRequestStatus(raw)
		if status != entity.MedicationRequestPending && status != entity.MedicationRequestDispensed {
			response.BadRequest(w, "Invalid status, use pending or dispensed")
			return
		}
	}

	requests, err := h.pharmacyUsecase.ListRequests(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Failed to list medication requests")
		return
	}

	response.Success(w, http.StatusOK, "Medication requests retrieved successfully", dto.MedicationRequestListResponse{
		Requests: requests,
		Total:    len(requests),
	})
}

// Dispense handles a pharmacist dispensing a request
// @Summary Dispense medication
// @Description Mark a pending dispense request as dispensed (pharmacist only)
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pharmacy/requests/{id}/dispense [post]
func (h *PharmacyHandler) Dispense(w http.ResponseWriter, r *http.Request) {
	pharmacistID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}

	request, err := h.pharmacyUsecase.Dispense(r.Context(), pharmacistID, requestID)
	if err != nil {
		switch err {
		case usecase.ErrMedicationRequestNotFound:
			response.NotFound(w, "Medication request not found")
		case usecase.ErrAlreadyDispensed:
			response.Conflict(w, "Medication request already dispensed")
		default:
			response.InternalServerError(w, "Failed to dispense medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication dispensed successfully", request)
}

// ListMedications handles listing a visit's prescriptions
// @Summary List visit medications
// @Description List medications prescribed for an OPD or IPD visit
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param visit_type path string true "OPD or IPD"
// @Param visit_no path string true "Visit number"
// @Success 200 {object} response.Response
// @Router /pharmacy/medications/visit/{visit_type}/{visit_no} [get]
func (h *PharmacyHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitType := entity.VisitType(vars["visit_type"])
	if visitType != entity.VisitTypeOPD && visitType != entity.VisitTypeIPD {
		response.BadRequest(w, "Invalid visit type, use OPD or IPD")
		return
	}

	medications, err := h.pharmacyUsecase.ListMedications(r.Context(), visitType, vars["visit_no"])
	if err != nil {
		response.InternalServerError(w, "Failed to list medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", dto.MedicationListResponse{
		Medications: medications,
		Total:       len(medications),
	})
}
