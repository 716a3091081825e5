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

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

// CreateRequest handles a doctor's OPD-to-IPD referral
// @Summary Request admission
// @Description Raise an OPD-to-IPD admission request (doctor only)
// @Tags Admissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdmissionRequestRequest true "Admission Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admissions/requests [post]
func (h *AdmissionHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAdmissionRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.admissionUsecase.CreateRequest(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		default:
			response.InternalServerError(w, "Failed to create admission request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admission request created successfully", request)
}

// ListRequests handles listing admission requests
// @Summary List admission requests
// @Description List OPD-to-IPD admission requests
// @Tags Admissions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admissions/requests [get]
func (h *AdmissionHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.admissionUsecase.ListRequests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list admission requests")
		return
	}

	response.Success(w, http.StatusOK, "Admission requests retrieved successfully", dto.AdmissionRequestListResponse{
		Requests: requests,
		Total:    len(requests),
	})
}

// ApproveRequest handles approving a referral
// @Summary Approve admission request
// @Description Approve a pending referral, assigning a bed and creating the admission
// @Tags Admissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.ApproveAdmissionRequest true "Approval"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admissions/requests/{id}/approve [post]
func (h *AdmissionHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}

	var req dto.ApproveAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.ApproveRequest(r.Context(), staffID, requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Admission request not found")
		case usecase.ErrRequestAlreadyDecided:
			response.Conflict(w, "Admission request already decided")
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case usecase.ErrBedOccupied:
			response.Conflict(w, "Bed is already occupied")
		default:
			response.InternalServerError(w, "Failed to approve admission request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admission created successfully", admission)
}

// RejectRequest handles rejecting a referral
// @Summary Reject admission request
// @Description Reject a pending referral with optional notes
// @Tags Admissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.RejectAdmissionRequest true "Rejection"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admissions/requests/{id}/reject [post]
func (h *AdmissionHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request ID")
		return
	}

	var req dto.RejectAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	request, err := h.admissionUsecase.RejectRequest(r.Context(), staffID, requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Admission request not found")
		case usecase.ErrRequestAlreadyDecided:
			response.Conflict(w, "Admission request already decided")
		default:
			response.InternalServerError(w, "Failed to reject admission request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission request rejected", request)
}

// Get handles fetching one admission
// @Summary Get admission
// @Description Get an admission by IPD number
// @Tags Admissions
// @Security BearerAuth
// @Produce json
// @Param ipd_no path string true "IPD number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admissions/{ipd_no} [get]
func (h *AdmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ipdNo := mux.Vars(r)["ipd_no"]

	admission, err := h.admissionUsecase.GetAdmission(r.Context(), ipdNo)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to get admission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission retrieved successfully", admission)
}

// List handles listing admissions
// @Summary List admissions
// @Description List admissions, optionally only active stays
// @Tags Admissions
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active stays"
// @Success 200 {object} response.Response
// @Router /admissions [get]
func (h *AdmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	admissions, err := h.admissionUsecase.ListAdmissions(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list admissions")
		return
	}

	response.Success(w, http.StatusOK, "Admissions retrieved successfully", dto.AdmissionListResponse{
		Admissions: admissions,
		Total:      len(admissions),
	})
}

// Discharge handles discharging a patient
// @Summary Discharge patient
// @Description Stamp the discharge date and free the bed
// @Tags Admissions
// @Security BearerAuth
// @Produce json
// @Param ipd_no path string true "IPD number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admissions/{ipd_no}/discharge [post]
func (h *AdmissionHandler) Discharge(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	ipdNo := mux.Vars(r)["ipd_no"]

	admission, err := h.admissionUsecase.Discharge(r.Context(), staffID, ipdNo)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		case usecase.ErrAlreadyDischarged:
			response.Conflict(w, "Patient already discharged")
		default:
			response.InternalServerError(w, "Failed to discharge patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient discharged successfully", admission)
}

// ListBeds handles the bed picker used on approval
// @Summary List available beds
// @Description List free beds, optionally filtered by ward
// @Tags Admissions
// @Security BearerAuth
// @Produce json
// @Param ward query string false "Ward filter"
// @Success 200 {object} response.Response
// @Router /beds [get]
func (h *AdmissionHandler) ListBeds(w http.ResponseWriter, r *http.Request) {
	ward := r.URL.Query().Get("ward")

	beds, err := h.admissionUsecase.ListAvailableBeds(r.Context(), ward)
	if err != nil {
		response.InternalServerError(w, "Failed to list beds")
		return
	}

	response.Success(w, http.StatusOK, "Beds retrieved successfully", dto.BedListResponse{
		Beds:  beds,
		Total: len(beds),
	})
}
