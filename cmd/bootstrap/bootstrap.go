package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hms-backend/config"
	deliveryHttp "hms-backend/internal/delivery/http"
	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/infrastructure/cache"
	"hms-backend/internal/infrastructure/database"
	"hms-backend/internal/repository"
	"hms-backend/internal/service"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/jwt"
	"hms-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.App); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	registrationFee, err := decimal.NewFromString(cfg.App.RegistrationFee)
	if err != nil {
		return nil, fmt.Errorf("invalid registration fee %q: %w", cfg.App.RegistrationFee, err)
	}

	// Initialize repositories
	staffRepo := repository.NewStaffRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	opdVisitRepo := repository.NewOPDVisitRepository()
	admissionRepo := repository.NewAdmissionRepository()
	requestRepo := repository.NewAdmissionRequestRepository()
	bedRepo := repository.NewBedRepository()
	billingRepo := repository.NewBillingRepository()
	caseSheetRepo := repository.NewCaseSheetRepository()
	therapyRepo := repository.NewTherapyRepository()
	pharmacyRepo := repository.NewPharmacyRepository()
	investigationRepo := repository.NewInvestigationRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	idService := service.NewIDService(log, cfg.App.FacilityCode)
	auditService := service.NewAuditService(log, auditRepo)

	// Align the current id buckets with identifiers that predate the
	// sequence table, so newly issued numbers continue after them.
	if err := idService.SeedCurrentBuckets(db, patientRepo, opdVisitRepo, admissionRepo, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to seed id sequences: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, staffRepo, auditService, jwtService, redisClient)
	registrationUsecase := usecase.NewRegistrationUsecase(db, log, patientRepo, appointmentRepo, opdVisitRepo, staffRepo, billingRepo, idService, auditService, registrationFee)
	admissionUsecase := usecase.NewAdmissionUsecase(db, log, admissionRepo, requestRepo, bedRepo, opdVisitRepo, idService, auditService)
	billingUsecase := usecase.NewBillingUsecase(db, log, billingRepo, opdVisitRepo, admissionRepo, auditService)
	caseSheetUsecase := usecase.NewCaseSheetUsecase(db, log, caseSheetRepo, therapyRepo, opdVisitRepo, admissionRepo, appointmentRepo, auditService)
	therapyUsecase := usecase.NewTherapyUsecase(db, log, therapyRepo, staffRepo, auditService)
	pharmacyUsecase := usecase.NewPharmacyUsecase(db, log, pharmacyRepo, opdVisitRepo, admissionRepo, auditService)
	investigationUsecase := usecase.NewInvestigationUsecase(db, log, investigationRepo, opdVisitRepo, admissionRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, opdVisitRepo, admissionRepo, requestRepo, appointmentRepo, therapyRepo, pharmacyRepo, investigationRepo, auditRepo, redisClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(registrationUsecase, customValidator)
	admissionHandler := handler.NewAdmissionHandler(admissionUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	caseSheetHandler := handler.NewCaseSheetHandler(caseSheetUsecase, customValidator)
	therapyHandler := handler.NewTherapyHandler(therapyUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)
	investigationHandler := handler.NewInvestigationHandler(investigationUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, staffHandler, patientHandler, admissionHandler, billingHandler, caseSheetHandler, therapyHandler, pharmacyHandler, investigationHandler, dashboardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
