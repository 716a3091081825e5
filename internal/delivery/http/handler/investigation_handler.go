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

type InvestigationHandler struct {
	investigationUsecase usecase.InvestigationUsecase
	validator            *validator.CustomValidator
}

func NewInvestigationHandler(investigationUsecase usecase.InvestigationUsecase, validator *validator.CustomValidator) *InvestigationHandler {
	return &InvestigationHandler{
		investigationUsecase: investigationUsecase,
		validator:            validator,
	}
}

// Request handles a doctor ordering lab work for a visit
// @Summary Request investigations
// @Description Order one or more tests for an OPD or IPD visit
// @Tags Investigations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RequestInvestigationRequest true "Request Investigation Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /investigations [post]
func (h *InvestigationHandler) Request(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RequestInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.Request(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid scheduled_date, use YYYY-MM-DD")
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to request investigation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Investigation requested successfully", investigation)
}

// ListByStatus handles the technician worklist
// @Summary List investigations
// @Description List investigations by status; pending sorts urgent first
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending or completed (default pending)"
// @Success 200 {object} response.Response
// @Router /investigations [get]
func (h *InvestigationHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := entity.InvestigationPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = entity.InvestigationStatus(raw)
		if status != entity.InvestigationPending && status != entity.InvestigationCompleted {
			response.BadRequest(w, "Invalid status, use pending or completed")
			return
		}
	}

	investigations, err := h.investigationUsecase.ListByStatus(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Failed to list investigations")
		return
	}

	response.Success(w, http.StatusOK, "Investigations retrieved successfully", dto.InvestigationListResponse{
		Investigations: investigations,
		Total:          len(investigations),
	})
}

// ListByVisit handles listing a visit's investigations
// @Summary List visit investigations
// @Description List investigations ordered for an OPD or IPD visit
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param visit_type path string true "OPD or IPD"
// @Param visit_no path string true "Visit number"
// @Success 200 {object} response.Response
// @Router /investigations/visit/{visit_type}/{visit_no} [get]
func (h *InvestigationHandler) ListByVisit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitType := entity.VisitType(vars["visit_type"])
	if visitType != entity.VisitTypeOPD && visitType != entity.VisitTypeIPD {
		response.BadRequest(w, "Invalid visit type, use OPD or IPD")
		return
	}

	investigations, err := h.investigationUsecase.ListByVisit(r.Context(), visitType, vars["visit_no"])
	if err != nil {
		response.InternalServerError(w, "Failed to list investigations")
		return
	}

	response.Success(w, http.StatusOK, "Investigations retrieved successfully", dto.InvestigationListResponse{
		Investigations: investigations,
		Total:          len(investigations),
	})
}

// Complete handles a technician closing an investigation
// @Summary Complete investigation
// @Description Mark a pending investigation completed (technician only)
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Investigation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /investigations/{id}/complete [post]
func (h *InvestigationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	technicianID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	investigationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid investigation ID")
		return
	}

	investigation, err := h.investigationUsecase.Complete(r.Context(), technicianID, investigationID)
	if err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		case usecase.ErrInvestigationDone:
			response.Conflict(w, "Investigation already completed")
		default:
			response.InternalServerError(w, "Failed to complete investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation completed", investigation)
}
