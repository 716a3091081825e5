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

type CaseSheetHandler struct {
	caseSheetUsecase usecase.CaseSheetUsecase
	validator        *validator.CustomValidator
}

func NewCaseSheetHandler(caseSheetUsecase usecase.CaseSheetUsecase, validator *validator.CustomValidator) *CaseSheetHandler {
	return &CaseSheetHandler{
		caseSheetUsecase: caseSheetUsecase,
		validator:        validator,
	}
}

// Create handles filing a clinical note
// @Summary Create case sheet
// @Description File a case sheet for an OPD visit or IPD admission (doctor only)
// @Tags CaseSheets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCaseSheetRequest true "Case Sheet"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /case-sheets [post]
func (h *CaseSheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCaseSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sheet, err := h.caseSheetUsecase.CreateCaseSheet(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to create case sheet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Case sheet created successfully", sheet)
}

// Get handles fetching one case sheet with its procedures
// @Summary Get case sheet
// @Description Get a case sheet by ID
// @Tags CaseSheets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Case sheet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /case-sheets/{id} [get]
func (h *CaseSheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid case sheet ID")
		return
	}

	sheet, err := h.caseSheetUsecase.GetCaseSheet(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCaseSheetNotFound:
			response.NotFound(w, "Case sheet not found")
		default:
			response.InternalServerError(w, "Failed to get case sheet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Case sheet retrieved successfully", sheet)
}

// ListByVisit handles listing a visit's case sheets
// @Summary List case sheets
// @Description List every case sheet of a visit, newest first
// @Tags CaseSheets
// @Security BearerAuth
// @Produce json
// @Param visit_type path string true "OPD or IPD"
// @Param visit_no path string true "Visit number"
// @Success 200 {object} response.Response
// @Router /case-sheets/visit/{visit_type}/{visit_no} [get]
func (h *CaseSheetHandler) ListByVisit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitType := entity.VisitType(vars["visit_type"])
	if visitType != entity.VisitTypeOPD && visitType != entity.VisitTypeIPD {
		response.BadRequest(w, "Visit type must be OPD or IPD")
		return
	}

	sheets, err := h.caseSheetUsecase.ListCaseSheets(r.Context(), visitType, vars["visit_no"])
	if err != nil {
		response.InternalServerError(w, "Failed to list case sheets")
		return
	}

	response.Success(w, http.StatusOK, "Case sheets retrieved successfully", dto.CaseSheetListResponse{
		Sheets: sheets,
		Total:  len(sheets),
	})
}

// Delete handles removing a case sheet
// @Summary Delete case sheet
// @Description Delete a case sheet by ID
// @Tags CaseSheets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Case sheet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /case-sheets/{id} [delete]
func (h *CaseSheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid case sheet ID")
		return
	}

	if err := h.caseSheetUsecase.DeleteCaseSheet(r.Context(), staffID, id); err != nil {
		switch err {
		case usecase.ErrCaseSheetNotFound:
			response.NotFound(w, "Case sheet not found")
		default:
			response.InternalServerError(w, "Failed to delete case sheet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Case sheet deleted successfully", nil)
}

// ListProcedures handles listing a visit's advised procedures
// @Summary List procedures
// @Description List the procedure entries advised for a visit
// @Tags CaseSheets
// @Security BearerAuth
// @Produce json
// @Param visit_no path string true "Visit number"
// @Success 200 {object} response.Response
// @Router /procedures/{visit_no} [get]
func (h *CaseSheetHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	visitNo := mux.Vars(r)["visit_no"]

	procedures, err := h.caseSheetUsecase.ListProcedures(r.Context(), visitNo)
	if err != nil {
		response.InternalServerError(w, "Failed to list procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}
