package handler

import (
	"encoding/json"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

// CreateRecord handles adding a flat OPD charge
// @Summary Create billing record
// @Description Add a flat charge to an OPD visit
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBillingRecordRequest true "Billing Record"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/records [post]
func (h *BillingHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBillingRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.billingUsecase.CreateRecord(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "OPD visit not found")
		default:
			response.InternalServerError(w, "Failed to create billing record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Billing record created successfully", record)
}

// ListRecords handles listing a visit's charges
// @Summary List billing records
// @Description List the flat charges of an OPD visit
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param opd_no path string true "OPD number"
// @Success 200 {object} response.Response
// @Router /billing/records/{opd_no} [get]
func (h *BillingHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	opdNo := mux.Vars(r)["opd_no"]

	records, err := h.billingUsecase.ListRecords(r.Context(), opdNo)
	if err != nil {
		response.InternalServerError(w, "Failed to list billing records")
		return
	}

	response.Success(w, http.StatusOK, "Billing records retrieved successfully", dto.BillingRecordListResponse{
		Records: records,
		Total:   len(records),
	})
}

// CreateIPDBill handles creating an itemized inpatient bill
// @Summary Create IPD bill
// @Description Create an itemized bill for an admission; the total is computed server-side
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateIPDBillRequest true "IPD Bill"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /billing/ipd [post]
func (h *BillingHandler) CreateIPDBill(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateIPDBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.CreateIPDBill(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to create IPD bill")
		}
		return
	}

	response.Success(w, http.StatusCreated, "IPD bill created successfully", bill)
}

// ListIPDBills handles listing an admission's bills
// @Summary List IPD bills
// @Description List the itemized bills of an admission
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param ipd_no path string true "IPD number"
// @Success 200 {object} response.Response
// @Router /billing/ipd/{ipd_no} [get]
func (h *BillingHandler) ListIPDBills(w http.ResponseWriter, r *http.Request) {
	ipdNo := mux.Vars(r)["ipd_no"]

	bills, err := h.billingUsecase.ListIPDBills(r.Context(), ipdNo)
	if err != nil {
		response.InternalServerError(w, "Failed to list IPD bills")
		return
	}

	response.Success(w, http.StatusOK, "IPD bills retrieved successfully", dto.IPDBillListResponse{
		Bills: bills,
		Total: len(bills),
	})
}
