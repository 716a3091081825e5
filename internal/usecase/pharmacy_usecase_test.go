package usecase

import (
	"context"
	"io"
	"testing"

	repoimpl "hms-backend/internal/repository"
	"hms-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newPharmacyFixture(t *testing.T) (PharmacyUsecase, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := NewPharmacyUsecase(
		db,
		log,
		repoimpl.NewPharmacyRepository(),
		repoimpl.NewOPDVisitRepository(),
		repoimpl.NewAdmissionRepository(),
		service.NewAuditService(log, repoimpl.NewAuditLogRepository()),
	)
	return uc, mock
}

func TestDispense(t *testing.T) {
	t.Run("pending request dispensed", func(t *testing.T) {
		uc, mock := newPharmacyFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "medication_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "status"}).
				AddRow(int64(5), int64(9), "pending"))
		mock.ExpectQuery(`SELECT (.+) FROM "medications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "dosage"}).
				AddRow(int64(9), "Triphala churna", "5g"))
		mock.ExpectExec(`UPDATE "medication_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "audit_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectCommit()

		pharmacistID := uuid.New()
		resp, err := uc.Dispense(context.Background(), pharmacistID, 5)
		if err != nil {
			t.Fatalf("Dispense() error = %v", err)
		}
		if resp.Status != "dispensed" {
			t.Fatalf("Status = %q, want dispensed", resp.Status)
		}
		if resp.DispensedBy == nil || *resp.DispensedBy != pharmacistID.String() {
			t.Fatalf("DispensedBy = %v, want %s", resp.DispensedBy, pharmacistID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("double dispense refused", func(t *testing.T) {
		uc, mock := newPharmacyFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "medication_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "status"}).
				AddRow(int64(5), int64(9), "dispensed"))
		mock.ExpectQuery(`SELECT (.+) FROM "medications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(int64(9), "Triphala churna"))
		mock.ExpectExec(`UPDATE "medication_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := uc.Dispense(context.Background(), uuid.New(), 5)
		if err != ErrAlreadyDispensed {
			t.Fatalf("Dispense() error = %v, want ErrAlreadyDispensed", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		uc, mock := newPharmacyFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "medication_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "status"}))
		mock.ExpectRollback()

		_, err := uc.Dispense(context.Background(), uuid.New(), 404)
		if err != ErrMedicationRequestNotFound {
			t.Fatalf("Dispense() error = %v, want ErrMedicationRequestNotFound", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
