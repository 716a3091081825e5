package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIPDBillChargesTotal(t *testing.T) {
	t.Run("sums all six charges", func(t *testing.T) {
		bill := IPDBill{
			BedCharge:       decimal.NewFromInt(500),
			NursingCharge:   decimal.NewFromInt(200),
			DoctorCharge:    decimal.NewFromInt(300),
			ProcedureCharge: decimal.NewFromInt(150),
			SurgeryCharge:   decimal.NewFromInt(1000),
			OtherCharge:     decimal.NewFromInt(50),
		}

		want := decimal.NewFromInt(2200)
		if got := bill.ChargesTotal(); !got.Equal(want) {
			t.Fatalf("ChargesTotal = %s, want %s", got, want)
		}
	})

	t.Run("zero bill totals zero", func(t *testing.T) {
		var bill IPDBill
		if got := bill.ChargesTotal(); !got.IsZero() {
			t.Fatalf("ChargesTotal = %s, want 0", got)
		}
	})

	t.Run("keeps paise precision", func(t *testing.T) {
		bill := IPDBill{
			BedCharge:     decimal.RequireFromString("99.95"),
			NursingCharge: decimal.RequireFromString("0.10"),
		}

		want := decimal.RequireFromString("100.05")
		if got := bill.ChargesTotal(); !got.Equal(want) {
			t.Fatalf("ChargesTotal = %s, want %s", got, want)
		}
	})
}
