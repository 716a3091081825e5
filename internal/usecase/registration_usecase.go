package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound           = errors.New("patient not found")
	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentNotCancellable = errors.New("appointment already seen or cancelled")
)

const registrationFeeDescription = "Registration Fee"

type RegistrationUsecase interface {
	RegisterPatient(ctx context.Context, staffID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error)
	StartVisit(ctx context.Context, staffID uuid.UUID, uhid string, req *dto.StartVisitRequest) (*dto.VisitResponse, error)
	SearchPatient(ctx context.Context, query string) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, uhid string) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) ([]dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, uhid string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetPatientVisits(ctx context.Context, uhid string) ([]dto.OPDVisitResponse, error)
	CancelAppointment(ctx context.Context, staffID uuid.UUID, appointmentID int64) error
	AddFollowUp(ctx context.Context, doctorID uuid.UUID, opdNo string, req *dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error)
	ListFollowUps(ctx context.Context, opdNo string) ([]dto.FollowUpResponse, error)
}

type registrationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	opdVisitRepo    repository.OPDVisitRepository
	staffRepo       repository.StaffRepository
	billingRepo     repository.BillingRepository
	idSvc           *service.IDService
	auditSvc        service.AuditService
	registrationFee decimal.Decimal
}

func NewRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	opdVisitRepo repository.OPDVisitRepository,
	staffRepo repository.StaffRepository,
	billingRepo repository.BillingRepository,
	idSvc *service.IDService,
	auditSvc service.AuditService,
	registrationFee decimal.Decimal,
) RegistrationUsecase {
	return &registrationUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		opdVisitRepo:    opdVisitRepo,
		staffRepo:       staffRepo,
		billingRepo:     billingRepo,
		idSvc:           idSvc,
		auditSvc:        auditSvc,
		registrationFee: registrationFee,
	}
}

// RegisterPatient runs the whole first-visit chain in one transaction:
// UHID, patient row, pending appointment, OPD visit, and the flat
// registration bill. Either all five land or none do.
func (u *registrationUsecase) RegisterPatient(ctx context.Context, staffID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error) {
	consultationDate, err := time.Parse("2006-01-02", req.ConsultationDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.staffRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	now := time.Now()

	uhid, err := u.idSvc.NextUHID(tx, now)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		UHID:     uhid,
		FullName: req.FullName,
		Age:      req.Age,
		Gender:   req.Gender,
		Mobile:   req.Mobile,
		Aadhaar:  req.Aadhaar,
		Address:  req.Address,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, fmt.Errorf("create patient: %w", err)
	}

	appointment := &entity.Appointment{
		UHID:            uhid,
		DepartmentID:    req.DepartmentID,
		SubDepartmentID: req.SubDepartmentID,
		DoctorID:        doctorID,
		AppointmentDate: consultationDate,
		Reason:          req.Complaint,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	opdNo, err := u.idSvc.NextOPDNo(tx, now)
	if err != nil {
		return nil, err
	}

	visit := &entity.OPDVisit{
		OPDNo:         opdNo,
		UHID:          uhid,
		AppointmentID: appointment.ID,
		VisitDate:     consultationDate,
	}

	if err := u.opdVisitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create OPD visit: %+v", err)
		return nil, fmt.Errorf("create opd visit: %w", err)
	}

	bill := &entity.BillingRecord{
		OPDNo:       opdNo,
		BillDate:    now,
		Description: registrationFeeDescription,
		Amount:      u.registrationFee,
	}

	if err := u.billingRepo.CreateRecord(tx, bill); err != nil {
		u.log.Warnf("Failed to create registration bill: %+v", err)
		return nil, fmt.Errorf("create registration bill: %w", err)
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionPatientRegister, "patient", uhid, entity.JSON{
		"opd_no": opdNo,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegistrationResponse{
		Patient:     *converter.PatientToResponse(patient),
		Appointment: *converter.AppointmentToResponse(appointment),
		OPDVisit:    converter.OPDVisitToResponse(visit),
		Bill:        converter.BillingRecordToResponse(bill),
	}, nil
}

// StartVisit opens a new visit for a returning patient. An OPD visit
// gets an OPD number and the registration bill; an IPD referral stops at
// the appointment and continues through the admission workflow.
func (u *registrationUsecase) StartVisit(ctx context.Context, staffID uuid.UUID, uhid string, req *dto.StartVisitRequest) (*dto.VisitResponse, error) {
	scheduledAt, err := time.Parse("2006-01-02", req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByUHID(u.db.WithContext(ctx), uhid)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.staffRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	now := time.Now()

	appointment := &entity.Appointment{
		UHID:            patient.UHID,
		DepartmentID:    req.DepartmentID,
		SubDepartmentID: req.SubDepartmentID,
		DoctorID:        doctorID,
		AppointmentDate: scheduledAt,
		Reason:          req.Notes,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	response := &dto.VisitResponse{}

	if req.VisitType == string(entity.VisitTypeOPD) {
		opdNo, err := u.idSvc.NextOPDNo(tx, now)
		if err != nil {
			return nil, err
		}

		visit := &entity.OPDVisit{
			OPDNo:         opdNo,
			UHID:          patient.UHID,
			AppointmentID: appointment.ID,
			VisitDate:     scheduledAt,
		}

		if err := u.opdVisitRepo.Create(tx, visit); err != nil {
			u.log.Warnf("Failed to create OPD visit: %+v", err)
			return nil, fmt.Errorf("create opd visit: %w", err)
		}

		bill := &entity.BillingRecord{
			OPDNo:       opdNo,
			BillDate:    now,
			Description: registrationFeeDescription,
			Amount:      u.registrationFee,
		}

		if err := u.billingRepo.CreateRecord(tx, bill); err != nil {
			u.log.Warnf("Failed to create registration bill: %+v", err)
			return nil, fmt.Errorf("create registration bill: %w", err)
		}

		response.OPDVisit = converter.OPDVisitToResponse(visit)
		response.Bill = converter.BillingRecordToResponse(bill)
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionVisitCreate, "appointment", patient.UHID, entity.JSON{
		"visit_type": req.VisitType,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response.Appointment = *converter.AppointmentToResponse(appointment)
	return response, nil
}

// SearchPatient resolves a front-desk query: exact mobile first, then
// the same number with the +91 country code, then UHID.
func (u *registrationUsecase) SearchPatient(ctx context.Context, query string) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	for _, mobile := range MobileSearchCandidates(query) {
		patient, err := u.patientRepo.FindByMobile(db, mobile)
		if err != nil {
			u.log.Warnf("Failed to search patient by mobile: %+v", err)
			return nil, err
		}
		if patient != nil {
			return converter.PatientToResponse(patient), nil
		}
	}

	patient, err := u.patientRepo.FindByUHID(db, strings.ToUpper(strings.TrimSpace(query)))
	if err != nil {
		u.log.Warnf("Failed to search patient by UHID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *registrationUsecase) GetPatient(ctx context.Context, uhid string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUHID(u.db.WithContext(ctx), uhid)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *registrationUsecase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *registrationUsecase) UpdatePatient(ctx context.Context, uhid string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUHID(tx, uhid)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.FullName = req.FullName
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Mobile = req.Mobile
	patient.Aadhaar = req.Aadhaar
	patient.Address = req.Address

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *registrationUsecase) GetPatientVisits(ctx context.Context, uhid string) ([]dto.OPDVisitResponse, error) {
	patient, err := u.patientRepo.FindByUHID(u.db.WithContext(ctx), uhid)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	visits, err := u.opdVisitRepo.FindByUHID(u.db.WithContext(ctx), uhid)
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
		return nil, err
	}

	responses := make([]dto.OPDVisitResponse, len(visits))
	for i, visit := range visits {
		responses[i] = *converter.OPDVisitToResponse(&visit)
	}
	return responses, nil
}

// CancelAppointment withdraws a pending appointment. The conditional
// UPDATE refuses once the doctor has seen the patient or the appointment
// was already cancelled.
func (u *registrationUsecase) CancelAppointment(ctx context.Context, staffID uuid.UUID, appointmentID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.Cancel(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if rows == 0 {
		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		return ErrAppointmentNotCancellable
	}

	if err := u.auditSvc.Record(tx, &staffID, entity.AuditActionAppointmentCancel, "appointment", "", entity.JSON{
		"appointment_id": appointmentID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *registrationUsecase) AddFollowUp(ctx context.Context, doctorID uuid.UUID, opdNo string, req *dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	followUpDate, err := time.Parse("2006-01-02", req.FollowUpDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	visit, err := u.opdVisitRepo.FindByOPDNo(u.db.WithContext(ctx), opdNo)
	if err != nil {
		u.log.Warnf("Failed to find OPD visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	followUp := &entity.OPDFollowUp{
		OPDNo:        visit.OPDNo,
		FollowUpDate: followUpDate,
		Notes:        req.Notes,
		DoctorID:     doctorID,
	}

	if err := u.opdVisitRepo.CreateFollowUp(tx, followUp); err != nil {
		u.log.Warnf("Failed to create follow-up: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &doctorID, entity.AuditActionFollowUpCreate, "opd_follow_up", visit.OPDNo, entity.JSON{
		"follow_up_date": req.FollowUpDate,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FollowUpToResponse(followUp), nil
}

func (u *registrationUsecase) ListFollowUps(ctx context.Context, opdNo string) ([]dto.FollowUpResponse, error) {
	visit, err := u.opdVisitRepo.FindByOPDNo(u.db.WithContext(ctx), opdNo)
	if err != nil {
		u.log.Warnf("Failed to find OPD visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	followUps, err := u.opdVisitRepo.FindFollowUpsByOPDNo(u.db.WithContext(ctx), opdNo)
	if err != nil {
		u.log.Warnf("Failed to list follow-ups: %+v", err)
		return nil, err
	}

	return converter.FollowUpsToResponses(followUps), nil
}

// MobileSearchCandidates expands a raw query into the mobile numbers to
// try, in order. A bare 10-digit number is retried with the +91 country
// code because older rows stored it prefixed.
func MobileSearchCandidates(query string) []string {
	q := strings.TrimSpace(query)
	candidates := []string{q}
	if len(q) == 10 && !strings.HasPrefix(q, "+") {
		candidates = append(candidates, "+91"+q)
	}
	return candidates
}
