package entity

import (
	"testing"
	"time"
)

func admissionFixture() IPDAdmission {
	return IPDAdmission{
		IPDNo:         "IPD-20250115-0001",
		UHID:          "PAMCH-25-JAN-0001",
		AdmissionDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdmissionStatus(t *testing.T) {
	t.Run("active while discharge date is null", func(t *testing.T) {
		admission := admissionFixture()
		if admission.IsDischarged() {
			t.Fatal("expected admission to be active")
		}
		if got := admission.Status(); got != AdmissionStatusActive {
			t.Fatalf("Status = %q, want %q", got, AdmissionStatusActive)
		}
	})

	t.Run("discharged once date is set", func(t *testing.T) {
		admission := admissionFixture()
		admission.Discharge(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))

		if !admission.IsDischarged() {
			t.Fatal("expected admission to be discharged")
		}
		if got := admission.Status(); got != AdmissionStatusDischarged {
			t.Fatalf("Status = %q, want %q", got, AdmissionStatusDischarged)
		}
		if admission.DischargeDate == nil {
			t.Fatal("expected discharge date to be stamped")
		}
	})
}
