package handler

import (
	"net/http"
	"strconv"

	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Stats handles the dashboard counters
// @Summary Get dashboard stats
// @Description Get the aggregated counts shown on role dashboards
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// AuditLogs handles the admin audit trail view
// @Summary List recent audit logs
// @Description List the most recent audit trail entries (admin only)
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} response.Response
// @Router /dashboard/audit-logs [get]
func (h *DashboardHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.dashboardUsecase.ListRecentAudit(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
