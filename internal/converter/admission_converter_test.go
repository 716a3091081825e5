package converter

import (
	"testing"
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAdmissionToResponse(t *testing.T) {
	t.Run("nil in nil out", func(t *testing.T) {
		if got := AdmissionToResponse(nil); got != nil {
			t.Fatalf("AdmissionToResponse(nil) = %v, want nil", got)
		}
	})

	t.Run("active admission", func(t *testing.T) {
		doctorID := uuid.New()
		admission := &entity.IPDAdmission{
			IPDNo:           "IPD-20250115-0001",
			UHID:            "PAMCH-25-JAN-0002",
			DoctorID:        doctorID,
			AdmissionReason: "fever",
			DepositAmount:   decimal.NewFromInt(2000),
			AdmissionDate:   time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		}

		got := AdmissionToResponse(admission)
		if got.Status != entity.AdmissionStatusActive {
			t.Errorf("Status = %q, want active", got.Status)
		}
		if got.DischargeDate != nil {
			t.Errorf("DischargeDate = %v, want nil", got.DischargeDate)
		}
		if got.AdmissionDate != "2025-01-15" {
			t.Errorf("AdmissionDate = %q", got.AdmissionDate)
		}
		if got.DoctorID != doctorID.String() {
			t.Errorf("DoctorID = %q", got.DoctorID)
		}
	})

	t.Run("discharged admission", func(t *testing.T) {
		discharge := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
		admission := &entity.IPDAdmission{
			IPDNo:         "IPD-20250115-0001",
			UHID:          "PAMCH-25-JAN-0002",
			DoctorID:      uuid.New(),
			AdmissionDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			DischargeDate: &discharge,
		}

		got := AdmissionToResponse(admission)
		if got.Status != entity.AdmissionStatusDischarged {
			t.Errorf("Status = %q, want discharged", got.Status)
		}
		if got.DischargeDate == nil || *got.DischargeDate != "2025-01-20" {
			t.Errorf("DischargeDate = %v, want 2025-01-20", got.DischargeDate)
		}
	})
}

func TestRequestToResponse(t *testing.T) {
	t.Run("nil in nil out", func(t *testing.T) {
		if got := RequestToResponse(nil); got != nil {
			t.Fatalf("RequestToResponse(nil) = %v, want nil", got)
		}
	})

	t.Run("decided request carries approver", func(t *testing.T) {
		approver := uuid.New()
		at := time.Now()
		request := &entity.OPDToIPDRequest{
			ID:         7,
			OPDNo:      "OPD-20250115-0003",
			UHID:       "PAMCH-25-JAN-0002",
			DoctorID:   uuid.New(),
			Status:     entity.AdmissionRequestApproved,
			ApprovedBy: &approver,
			ApprovedAt: &at,
		}

		got := RequestToResponse(request)
		if got.Status != "approved" {
			t.Errorf("Status = %q, want approved", got.Status)
		}
		if got.ApprovedBy == nil || *got.ApprovedBy != approver.String() {
			t.Errorf("ApprovedBy = %v", got.ApprovedBy)
		}
	})
}
