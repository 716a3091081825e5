package usecase

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"hms-backend/internal/delivery/dto"
	repoimpl "hms-backend/internal/repository"
	"hms-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return db, mock
}

func newRegistrationFixture(t *testing.T) (RegistrationUsecase, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := NewRegistrationUsecase(
		db,
		log,
		repoimpl.NewPatientRepository(),
		repoimpl.NewAppointmentRepository(),
		repoimpl.NewOPDVisitRepository(),
		repoimpl.NewStaffRepository(),
		repoimpl.NewBillingRepository(),
		service.NewIDService(log, "PAMCH"),
		service.NewAuditService(log, repoimpl.NewAuditLogRepository()),
		decimal.NewFromInt(100),
	)
	return uc, mock
}

func TestRegisterPatientRollsBackOnStepFailure(t *testing.T) {
	doctorID := uuid.New()
	req := &dto.RegisterPatientRequest{
		FullName:         "Asha Verma",
		Age:              34,
		Gender:           "Female",
		Mobile:           "+919876543210",
		Aadhaar:          "123412341234",
		Address:          "12 MG Road",
		DepartmentID:     1,
		DoctorID:         doctorID.String(),
		Complaint:        "Back pain",
		ConsultationDate: "2025-07-14",
	}

	errInsert := errors.New("insert failed")

	cases := []struct {
		name     string
		expect   func(mock sqlmock.Sqlmock)
		wantStep string
	}{
		{
			name: "appointment insert failure rolls back the chain",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO "appointments"`).WillReturnError(errInsert)
			},
			wantStep: "create appointment",
		},
		{
			name: "bill insert failure rolls back the chain",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO "appointments"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
				mock.ExpectQuery(`INSERT INTO id_sequences`).
					WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(4))
				mock.ExpectExec(`INSERT INTO "opd_visits"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`INSERT INTO "billing_records"`).WillReturnError(errInsert)
			},
			wantStep: "create registration bill",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mock := newRegistrationFixture(t)

			mock.ExpectQuery(`SELECT (.+) FROM "staff"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(doctorID.String(), "doctor"))
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO id_sequences`).
				WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(12))
			mock.ExpectExec(`INSERT INTO "patients"`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			tc.expect(mock)
			mock.ExpectRollback()

			_, err := uc.RegisterPatient(context.Background(), uuid.New(), req)
			if err == nil {
				t.Fatal("RegisterPatient() expected an error, got none")
			}
			if !strings.Contains(err.Error(), tc.wantStep) {
				t.Fatalf("RegisterPatient() error %q does not name step %q", err, tc.wantStep)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestCancelAppointment(t *testing.T) {
	t.Run("pending appointment cancelled", func(t *testing.T) {
		uc, mock := newRegistrationFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "appointments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "audit_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectCommit()

		if err := uc.CancelAppointment(context.Background(), uuid.New(), 41); err != nil {
			t.Fatalf("CancelAppointment() error = %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("seen appointment refused", func(t *testing.T) {
		uc, mock := newRegistrationFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "appointments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(int64(41), "seen"))
		mock.ExpectRollback()

		err := uc.CancelAppointment(context.Background(), uuid.New(), 41)
		if err != ErrAppointmentNotCancellable {
			t.Fatalf("CancelAppointment() error = %v, want ErrAppointmentNotCancellable", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		uc, mock := newRegistrationFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "appointments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
		mock.ExpectRollback()

		err := uc.CancelAppointment(context.Background(), uuid.New(), 999)
		if err != ErrAppointmentNotFound {
			t.Fatalf("CancelAppointment() error = %v, want ErrAppointmentNotFound", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

func TestMobileSearchCandidates(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "bare ten digit number retried with country code",
			query: "9876543210",
			want:  []string{"9876543210", "+919876543210"},
		},
		{
			name:  "already prefixed number tried as-is",
			query: "+919876543210",
			want:  []string{"+919876543210"},
		},
		{
			name:  "whitespace trimmed before matching",
			query: "  9876543210 ",
			want:  []string{"9876543210", "+919876543210"},
		},
		{
			name:  "uhid query gets no mobile expansion",
			query: "PAMCH-25-JUL-0004",
			want:  []string{"PAMCH-25-JUL-0004"},
		},
		{
			name:  "short number not expanded",
			query: "12345",
			want:  []string{"12345"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MobileSearchCandidates(tc.query)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MobileSearchCandidates(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}
