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

func newInvestigationFixture(t *testing.T) (InvestigationUsecase, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := NewInvestigationUsecase(
		db,
		log,
		repoimpl.NewInvestigationRepository(),
		repoimpl.NewOPDVisitRepository(),
		repoimpl.NewAdmissionRepository(),
		service.NewAuditService(log, repoimpl.NewAuditLogRepository()),
	)
	return uc, mock
}

func TestCompleteInvestigation(t *testing.T) {
	t.Run("pending investigation completed", func(t *testing.T) {
		uc, mock := newInvestigationFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "investigations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tests", "priority", "status"}).
				AddRow(int64(8), []byte(`["CBC"]`), "urgent", "pending"))
		mock.ExpectExec(`UPDATE "investigations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "audit_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectCommit()

		technicianID := uuid.New()
		resp, err := uc.Complete(context.Background(), technicianID, 8)
		if err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
		if resp.Status != "completed" {
			t.Fatalf("Status = %q, want completed", resp.Status)
		}
		if resp.CompletedBy == nil || *resp.CompletedBy != technicianID.String() {
			t.Fatalf("CompletedBy = %v, want %s", resp.CompletedBy, technicianID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("double completion refused", func(t *testing.T) {
		uc, mock := newInvestigationFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "investigations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tests", "priority", "status"}).
				AddRow(int64(8), []byte(`["CBC"]`), "urgent", "completed"))
		mock.ExpectExec(`UPDATE "investigations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := uc.Complete(context.Background(), uuid.New(), 8)
		if err != ErrInvestigationDone {
			t.Fatalf("Complete() error = %v, want ErrInvestigationDone", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("unknown investigation", func(t *testing.T) {
		uc, mock := newInvestigationFixture(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM "investigations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tests", "priority", "status"}))
		mock.ExpectRollback()

		_, err := uc.Complete(context.Background(), uuid.New(), 404)
		if err != ErrInvestigationNotFound {
			t.Fatalf("Complete() error = %v, want ErrInvestigationNotFound", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
