package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMedicationRequestDispense(t *testing.T) {
	pharmacistID := uuid.New()
	at := time.Date(2025, time.July, 14, 11, 30, 0, 0, time.UTC)

	req := MedicationRequest{Status: MedicationRequestPending}
	if req.IsDispensed() {
		t.Fatal("fresh request should not be dispensed")
	}

	req.Dispense(pharmacistID, at)

	if !req.IsDispensed() {
		t.Fatal("request should be dispensed after Dispense")
	}
	if req.DispensedBy == nil || *req.DispensedBy != pharmacistID {
		t.Fatalf("DispensedBy = %v, want %s", req.DispensedBy, pharmacistID)
	}
	if req.DispensedAt == nil || !req.DispensedAt.Equal(at) {
		t.Fatalf("DispensedAt = %v, want %s", req.DispensedAt, at)
	}
}

func TestInvestigationComplete(t *testing.T) {
	technicianID := uuid.New()
	at := time.Date(2025, time.July, 15, 16, 0, 0, 0, time.UTC)

	inv := Investigation{Status: InvestigationPending}
	if inv.IsCompleted() {
		t.Fatal("fresh investigation should not be completed")
	}

	inv.Complete(technicianID, at)

	if !inv.IsCompleted() {
		t.Fatal("investigation should be completed after Complete")
	}
	if inv.CompletedBy == nil || *inv.CompletedBy != technicianID {
		t.Fatalf("CompletedBy = %v, want %s", inv.CompletedBy, technicianID)
	}
	if inv.CompletedAt == nil || !inv.CompletedAt.Equal(at) {
		t.Fatalf("CompletedAt = %v, want %s", inv.CompletedAt, at)
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []InvestigationPriority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		if !ValidPriority(p) {
			t.Errorf("ValidPriority(%q) = false, want true", p)
		}
	}
	if ValidPriority("stat") {
		t.Error(`ValidPriority("stat") = true, want false`)
	}
}
