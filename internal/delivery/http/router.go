package http

import (
	"net/http"

	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	staffHandler         *handler.StaffHandler
	patientHandler       *handler.PatientHandler
	admissionHandler     *handler.AdmissionHandler
	billingHandler       *handler.BillingHandler
	caseSheetHandler     *handler.CaseSheetHandler
	therapyHandler       *handler.TherapyHandler
	pharmacyHandler      *handler.PharmacyHandler
	investigationHandler *handler.InvestigationHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	staffHandler *handler.StaffHandler,
	patientHandler *handler.PatientHandler,
	admissionHandler *handler.AdmissionHandler,
	billingHandler *handler.BillingHandler,
	caseSheetHandler *handler.CaseSheetHandler,
	therapyHandler *handler.TherapyHandler,
	pharmacyHandler *handler.PharmacyHandler,
	investigationHandler *handler.InvestigationHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		staffHandler:         staffHandler,
		patientHandler:       patientHandler,
		admissionHandler:     admissionHandler,
		billingHandler:       billingHandler,
		caseSheetHandler:     caseSheetHandler,
		therapyHandler:       therapyHandler,
		pharmacyHandler:      pharmacyHandler,
		investigationHandler: investigationHandler,
		dashboardHandler:     dashboardHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentStaff).Methods(http.MethodGet)

	// Staff management (admin only, except the pickers)
	staffAdmin := api.PathPrefix("/staff").Subrouter()
	staffAdmin.Use(r.authMiddleware.Authenticate)
	staffAdmin.Use(middleware.RequireAdmin)
	staffAdmin.HandleFunc("", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	staffAdmin.HandleFunc("/role/{role}", r.staffHandler.ListByRole).Methods(http.MethodGet)

	// Doctor picker is used by registration, so every authenticated role
	// may read it
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.HandleFunc("/doctors", r.staffHandler.ListDoctors).Methods(http.MethodGet)

	// Patient registration and lookup (front desk)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireFrontDesk)
	patients.HandleFunc("", r.patientHandler.Register).Methods(http.MethodPost)
	patients.HandleFunc("/{uhid}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{uhid}/visits", r.patientHandler.StartVisit).Methods(http.MethodPost)

	// Patient reads (any authenticated staff)
	patientReads := api.PathPrefix("/patients").Subrouter()
	patientReads.Use(r.authMiddleware.Authenticate)
	patientReads.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patientReads.HandleFunc("/search", r.patientHandler.Search).Methods(http.MethodGet)
	patientReads.HandleFunc("/{uhid}", r.patientHandler.GetByUHID).Methods(http.MethodGet)
	patientReads.HandleFunc("/{uhid}/visits", r.patientHandler.ListVisits).Methods(http.MethodGet)

	// Appointments: front desk may cancel while still pending
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("/{id}/cancel", middleware.RequireFrontDesk(http.HandlerFunc(r.patientHandler.CancelAppointment))).Methods(http.MethodPost)

	// OPD follow-ups: doctors schedule, any authenticated staff reads
	visits := api.PathPrefix("/visits").Subrouter()
	visits.Use(r.authMiddleware.Authenticate)
	visits.Handle("/{opd_no}/follow-ups", middleware.RequireDoctor(http.HandlerFunc(r.patientHandler.AddFollowUp))).Methods(http.MethodPost)
	visits.HandleFunc("/{opd_no}/follow-ups", r.patientHandler.ListFollowUps).Methods(http.MethodGet)

	// Admission requests: doctors raise them, front desk decides
	admissionRequests := api.PathPrefix("/admissions/requests").Subrouter()
	admissionRequests.Use(r.authMiddleware.Authenticate)
	admissionRequests.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.admissionHandler.CreateRequest))).Methods(http.MethodPost)
	admissionRequests.HandleFunc("", r.admissionHandler.ListRequests).Methods(http.MethodGet)
	admissionRequests.Handle("/{id}/approve", middleware.RequireFrontDesk(http.HandlerFunc(r.admissionHandler.ApproveRequest))).Methods(http.MethodPost)
	admissionRequests.Handle("/{id}/reject", middleware.RequireFrontDesk(http.HandlerFunc(r.admissionHandler.RejectRequest))).Methods(http.MethodPost)

	// Admissions
	admissions := api.PathPrefix("/admissions").Subrouter()
	admissions.Use(r.authMiddleware.Authenticate)
	admissions.HandleFunc("", r.admissionHandler.List).Methods(http.MethodGet)
	admissions.HandleFunc("/{ipd_no}", r.admissionHandler.Get).Methods(http.MethodGet)
	admissions.Handle("/{ipd_no}/discharge", middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleReceptionist)(http.HandlerFunc(r.admissionHandler.Discharge))).Methods(http.MethodPost)

	// Beds
	beds := api.PathPrefix("/beds").Subrouter()
	beds.Use(r.authMiddleware.Authenticate)
	beds.HandleFunc("", r.admissionHandler.ListBeds).Methods(http.MethodGet)

	// Billing (front desk writes, everyone authenticated reads)
	billing := api.PathPrefix("/billing").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.Handle("/records", middleware.RequireFrontDesk(http.HandlerFunc(r.billingHandler.CreateRecord))).Methods(http.MethodPost)
	billing.HandleFunc("/records/{opd_no}", r.billingHandler.ListRecords).Methods(http.MethodGet)
	billing.Handle("/ipd", middleware.RequireFrontDesk(http.HandlerFunc(r.billingHandler.CreateIPDBill))).Methods(http.MethodPost)
	billing.HandleFunc("/ipd/{ipd_no}", r.billingHandler.ListIPDBills).Methods(http.MethodGet)

	// Case sheets (clinical staff)
	caseSheets := api.PathPrefix("/case-sheets").Subrouter()
	caseSheets.Use(r.authMiddleware.Authenticate)
	caseSheets.Use(middleware.RequireClinical)
	caseSheets.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.caseSheetHandler.Create))).Methods(http.MethodPost)
	caseSheets.HandleFunc("/visit/{visit_type}/{visit_no}", r.caseSheetHandler.ListByVisit).Methods(http.MethodGet)
	caseSheets.HandleFunc("/{id}", r.caseSheetHandler.Get).Methods(http.MethodGet)
	caseSheets.Handle("/{id}", middleware.RequireDoctor(http.HandlerFunc(r.caseSheetHandler.Delete))).Methods(http.MethodDelete)

	// Procedures advised per visit
	procedures := api.PathPrefix("/procedures").Subrouter()
	procedures.Use(r.authMiddleware.Authenticate)
	procedures.Use(middleware.RequireClinical)
	procedures.HandleFunc("/{visit_no}", r.caseSheetHandler.ListProcedures).Methods(http.MethodGet)

	// Therapy scheduling
	therapies := api.PathPrefix("/therapies").Subrouter()
	therapies.Use(r.authMiddleware.Authenticate)
	therapies.Handle("", middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleReceptionist)(http.HandlerFunc(r.therapyHandler.Schedule))).Methods(http.MethodPost)
	therapies.Handle("/schedule", middleware.RequireTherapist(http.HandlerFunc(r.therapyHandler.MySchedule))).Methods(http.MethodGet)
	therapies.Handle("/{id}/complete", middleware.RequireTherapist(http.HandlerFunc(r.therapyHandler.Complete))).Methods(http.MethodPost)

	// Pharmacy: doctors prescribe, pharmacists dispense
	pharmacy := api.PathPrefix("/pharmacy").Subrouter()
	pharmacy.Use(r.authMiddleware.Authenticate)
	pharmacy.Handle("/medications", middleware.RequireDoctor(http.HandlerFunc(r.pharmacyHandler.Prescribe))).Methods(http.MethodPost)
	pharmacy.HandleFunc("/medications/visit/{visit_type}/{visit_no}", r.pharmacyHandler.ListMedications).Methods(http.MethodGet)
	pharmacy.Handle("/requests", middleware.RequireRole(entity.RoleAdmin, entity.RolePharmacist)(http.HandlerFunc(r.pharmacyHandler.ListRequests))).Methods(http.MethodGet)
	pharmacy.Handle("/requests/{id}/dispense", middleware.RequirePharmacist(http.HandlerFunc(r.pharmacyHandler.Dispense))).Methods(http.MethodPost)

	// Investigations: doctors order, technicians work the queue
	investigations := api.PathPrefix("/investigations").Subrouter()
	investigations.Use(r.authMiddleware.Authenticate)
	investigations.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.investigationHandler.Request))).Methods(http.MethodPost)
	investigations.Handle("", middleware.RequireRole(entity.RoleAdmin, entity.RoleTechnician, entity.RoleDoctor)(http.HandlerFunc(r.investigationHandler.ListByStatus))).Methods(http.MethodGet)
	investigations.HandleFunc("/visit/{visit_type}/{visit_no}", r.investigationHandler.ListByVisit).Methods(http.MethodGet)
	investigations.Handle("/{id}/complete", middleware.RequireTechnician(http.HandlerFunc(r.investigationHandler.Complete))).Methods(http.MethodPost)

	// Dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("/stats", r.dashboardHandler.Stats).Methods(http.MethodGet)
	dashboard.Handle("/audit-logs", middleware.RequireAdmin(http.HandlerFunc(r.dashboardHandler.AuditLogs))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
