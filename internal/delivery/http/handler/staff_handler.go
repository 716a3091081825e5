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

type StaffHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewStaffHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// CreateStaff handles staff account creation
// @Summary Create staff account
// @Description Create a staff account with a role (admin only)
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.authUsecase.CreateStaff(r.Context(), adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to create staff")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Staff created successfully", staff)
}

// ListByRole handles listing staff of one role
// @Summary List staff by role
// @Description List staff accounts holding the given role
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param role path string true "Staff role"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/role/{role} [get]
func (h *StaffHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := entity.StaffRole(mux.Vars(r)["role"])
	if !entity.ValidRole(role) {
		response.BadRequest(w, "Unknown staff role")
		return
	}

	staff, err := h.authUsecase.ListStaffByRole(r.Context(), role)
	if err != nil {
		response.InternalServerError(w, "Failed to list staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", dto.StaffListResponse{
		Staff: staff,
		Total: len(staff),
	})
}

// ListDoctors handles the doctor picker used by registration
// @Summary List doctors
// @Description List doctors, optionally filtered by department
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param department_id query int false "Department filter"
// @Param sub_department_id query int false "Sub-department filter"
// @Success 200 {object} response.Response
// @Router /staff/doctors [get]
func (h *StaffHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	var departmentID, subDepartmentID *int

	if raw := r.URL.Query().Get("department_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid department_id")
			return
		}
		departmentID = &id
	}
	if raw := r.URL.Query().Get("sub_department_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid sub_department_id")
			return
		}
		subDepartmentID = &id
	}

	doctors, err := h.authUsecase.ListDoctors(r.Context(), departmentID, subDepartmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", dto.StaffListResponse{
		Staff: doctors,
		Total: len(doctors),
	})
}
