package dto

// DashboardStatsResponse aggregates the counts every role dashboard
// shows. Fields a role does not display are simply ignored client-side.
type DashboardStatsResponse struct {
	TotalPatients       int64 `json:"total_patients"`
	TodayOPDVisits      int64 `json:"today_opd_visits"`
	ActiveAdmissions    int64 `json:"active_admissions"`
	PendingAppointments int64 `json:"pending_appointments"`
	PendingIPDRequests  int64 `json:"pending_ipd_requests"`
	PendingTherapies    int64 `json:"pending_therapies"`
	PendingMedications  int64 `json:"pending_medication_requests"`
	PendingLabWork      int64 `json:"pending_investigations"`
}
