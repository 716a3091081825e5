package service

import (
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records domain writes to the audit trail. Entries ride the
// caller's transaction so a rolled-back workflow leaves no audit orphan.
type AuditService interface {
	Record(tx *gorm.DB, staffID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, staffID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range detail {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		StaffID:  staffID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
