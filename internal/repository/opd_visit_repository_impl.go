package repository

import (
	"errors"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type opdVisitRepository struct{}

func NewOPDVisitRepository() domainRepo.OPDVisitRepository {
	return &opdVisitRepository{}
}

func (r *opdVisitRepository) Create(db *gorm.DB, visit *entity.OPDVisit) error {
	return db.Create(visit).Error
}

func (r *opdVisitRepository) FindByOPDNo(db *gorm.DB, opdNo string) (*entity.OPDVisit, error) {
	var visit entity.OPDVisit
	err := db.Preload("Patient").Preload("Appointment.Doctor").
		Where("opd_no = ?", opdNo).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *opdVisitRepository) FindByUHID(db *gorm.DB, uhid string) ([]entity.OPDVisit, error) {
	var visits []entity.OPDVisit
	err := db.Preload("Appointment.Doctor").
		Where("uhid = ?", uhid).
		Order("visit_date DESC, created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *opdVisitRepository) NumbersWithPrefix(db *gorm.DB, prefix string) ([]string, error) {
	var numbers []string
	err := db.Model(&entity.OPDVisit{}).
		Where("opd_no LIKE ?", prefix+"%").
		Pluck("opd_no", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *opdVisitRepository) CountByDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.OPDVisit{}).
		Where("visit_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *opdVisitRepository) CreateFollowUp(db *gorm.DB, followUp *entity.OPDFollowUp) error {
	return db.Create(followUp).Error
}

func (r *opdVisitRepository) FindFollowUpsByOPDNo(db *gorm.DB, opdNo string) ([]entity.OPDFollowUp, error) {
	var followUps []entity.OPDFollowUp
	err := db.Preload("Doctor").
		Where("opd_no = ?", opdNo).
		Order("follow_up_date DESC, created_at DESC").
		Find(&followUps).Error
	if err != nil {
		return nil, err
	}
	return followUps, nil
}
