package usecase

import (
	"context"
	"encoding/json"
	"time"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 30 * time.Second
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ListRecentAudit(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type dashboardUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	patientRepo       repository.PatientRepository
	opdVisitRepo      repository.OPDVisitRepository
	admissionRepo     repository.AdmissionRepository
	requestRepo       repository.AdmissionRequestRepository
	appointmentRepo   repository.AppointmentRepository
	therapyRepo       repository.TherapyRepository
	pharmacyRepo      repository.PharmacyRepository
	investigationRepo repository.InvestigationRepository
	auditRepo         repository.AuditLogRepository
	redisClient       *redis.Client
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	opdVisitRepo repository.OPDVisitRepository,
	admissionRepo repository.AdmissionRepository,
	requestRepo repository.AdmissionRequestRepository,
	appointmentRepo repository.AppointmentRepository,
	therapyRepo repository.TherapyRepository,
	pharmacyRepo repository.PharmacyRepository,
	investigationRepo repository.InvestigationRepository,
	auditRepo repository.AuditLogRepository,
	redisClient *redis.Client,
) DashboardUsecase {
	return &dashboardUsecase{
		db:                db,
		log:               log,
		patientRepo:       patientRepo,
		opdVisitRepo:      opdVisitRepo,
		admissionRepo:     admissionRepo,
		requestRepo:       requestRepo,
		appointmentRepo:   appointmentRepo,
		therapyRepo:       therapyRepo,
		pharmacyRepo:      pharmacyRepo,
		investigationRepo: investigationRepo,
		auditRepo:         auditRepo,
		redisClient:       redisClient,
	}
}

// GetStats serves the dashboard counters from a short-lived Redis cache.
// The counts drive landing pages for every role, so they take the bulk
// of read traffic; 30 seconds of staleness is acceptable there.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, err := u.redisClient.Get(ctx, dashboardStatsKey).Bytes(); err == nil {
		var stats dto.DashboardStatsResponse
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read dashboard cache: %+v", err)
	}

	db := u.db.WithContext(ctx)
	stats := &dto.DashboardStatsResponse{}

	var err error
	if stats.TotalPatients, err = u.patientRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.TodayOPDVisits, err = u.opdVisitRepo.CountByDate(db, time.Now()); err != nil {
		u.log.Warnf("Failed to count today's OPD visits: %+v", err)
		return nil, err
	}
	if stats.ActiveAdmissions, err = u.admissionRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active admissions: %+v", err)
		return nil, err
	}
	if stats.PendingAppointments, err = u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusPending); err != nil {
		u.log.Warnf("Failed to count pending appointments: %+v", err)
		return nil, err
	}
	if stats.PendingIPDRequests, err = u.requestRepo.CountPending(db); err != nil {
		u.log.Warnf("Failed to count pending IPD requests: %+v", err)
		return nil, err
	}
	if stats.PendingTherapies, err = u.therapyRepo.CountPending(db, nil); err != nil {
		u.log.Warnf("Failed to count pending therapies: %+v", err)
		return nil, err
	}
	if stats.PendingMedications, err = u.pharmacyRepo.CountPendingRequests(db); err != nil {
		u.log.Warnf("Failed to count pending medication requests: %+v", err)
		return nil, err
	}
	if stats.PendingLabWork, err = u.investigationRepo.CountPending(db); err != nil {
		u.log.Warnf("Failed to count pending investigations: %+v", err)
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := u.redisClient.Set(ctx, dashboardStatsKey, payload, dashboardStatsTTL).Err(); err != nil {
			u.log.Warnf("Failed to write dashboard cache: %+v", err)
		}
	}

	return stats, nil
}

func (u *dashboardUsecase) ListRecentAudit(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return logs, nil
}
