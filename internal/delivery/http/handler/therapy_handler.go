package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type TherapyHandler struct {
	therapyUsecase usecase.TherapyUsecase
	validator      *validator.CustomValidator
}

func NewTherapyHandler(therapyUsecase usecase.TherapyUsecase, validator *validator.CustomValidator) *TherapyHandler {
	return &TherapyHandler{
		therapyUsecase: therapyUsecase,
		validator:      validator,
	}
}

// Schedule handles assigning a therapist to a procedure
// @Summary Schedule therapy
// @Description Assign a therapist to an advised procedure at a date and time
// @Tags Therapy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ScheduleTherapyRequest true "Schedule Therapy Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /therapies [post]
func (h *TherapyHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ScheduleTherapyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapy, err := h.therapyUsecase.Schedule(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid scheduled_at, use RFC 3339")
		case usecase.ErrProcedureNotFound:
			response.NotFound(w, "Procedure entry not found")
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to schedule therapy")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Therapy scheduled successfully", therapy)
}

// Complete handles marking a session done
// @Summary Complete therapy session
// @Description Mark an assigned therapy session completed (therapist only)
// @Tags Therapy
// @Security BearerAuth
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /therapies/{id}/complete [post]
func (h *TherapyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	therapistID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	assignmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid assignment ID")
		return
	}

	therapy, err := h.therapyUsecase.Complete(r.Context(), therapistID, assignmentID)
	if err != nil {
		switch err {
		case usecase.ErrAssignmentNotFound:
			response.NotFound(w, "Therapist assignment not found")
		case usecase.ErrAlreadyCompleted:
			response.Conflict(w, "Therapy session already completed")
		default:
			response.InternalServerError(w, "Failed to complete therapy session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Therapy session completed", therapy)
}

// MySchedule handles a therapist's day view
// @Summary Get therapist schedule
// @Description List the authenticated therapist's assignments for a day
// @Tags Therapy
// @Security BearerAuth
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Response
// @Router /therapies/schedule [get]
func (h *TherapyHandler) MySchedule(w http.ResponseWriter, r *http.Request) {
	therapistID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
			return
		}
		date = parsed
	}

	therapies, err := h.therapyUsecase.GetSchedule(r.Context(), therapistID, date)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", dto.TherapyListResponse{
		Therapies: therapies,
		Total:     len(therapies),
	})
}
