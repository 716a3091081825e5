package service

import (
	"testing"
	"time"
)

func TestUHIDPrefix(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"july", time.Date(2025, time.July, 14, 10, 0, 0, 0, time.UTC), "PAMCH-25-JUL-"},
		{"january", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "PAMCH-25-JAN-"},
		{"year rollover", time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC), "PAMCH-26-DEC-"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UHIDPrefix("PAMCH", tc.date)
			if got != tc.want {
				t.Fatalf("UHIDPrefix = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDayPrefixes(t *testing.T) {
	date := time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)

	if got := OPDPrefix(date); got != "OPD-20250115-" {
		t.Fatalf("OPDPrefix = %q, want OPD-20250115-", got)
	}
	if got := IPDPrefix(date); got != "IPD-20250115-" {
		t.Fatalf("IPDPrefix = %q, want IPD-20250115-", got)
	}
}

func TestFormatID(t *testing.T) {
	cases := []struct {
		prefix string
		serial int
		want   string
	}{
		{"OPD-20250115-", 1, "OPD-20250115-0001"},
		{"OPD-20250115-", 12, "OPD-20250115-0012"},
		{"PAMCH-25-JUL-", 999, "PAMCH-25-JUL-0999"},
		{"PAMCH-25-JUL-", 10000, "PAMCH-25-JUL-10000"},
	}

	for _, tc := range cases {
		if got := FormatID(tc.prefix, tc.serial); got != tc.want {
			t.Errorf("FormatID(%q, %d) = %q, want %q", tc.prefix, tc.serial, got, tc.want)
		}
	}
}

func TestMaxSuffix(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := MaxSuffix(nil); got != 0 {
			t.Fatalf("MaxSuffix(nil) = %d, want 0", got)
		}
	})

	t.Run("picks highest", func(t *testing.T) {
		ids := []string{
			"OPD-20250115-0003",
			"OPD-20250115-0012",
			"OPD-20250115-0007",
		}
		if got := MaxSuffix(ids); got != 12 {
			t.Fatalf("MaxSuffix = %d, want 12", got)
		}
	})

	t.Run("ignores malformed", func(t *testing.T) {
		ids := []string{
			"OPD-20250115-0004",
			"not-an-id",
			"OPD-20250115-",
		}
		if got := MaxSuffix(ids); got != 4 {
			t.Fatalf("MaxSuffix = %d, want 4", got)
		}
	})
}

func TestNextFromExisting(t *testing.T) {
	t.Run("first of bucket", func(t *testing.T) {
		got := NextFromExisting("OPD-20250115-", nil)
		if got != "OPD-20250115-0001" {
			t.Fatalf("NextFromExisting = %q, want OPD-20250115-0001", got)
		}
	})

	t.Run("continues after highest", func(t *testing.T) {
		existing := []string{"PAMCH-25-JUL-0001", "PAMCH-25-JUL-0003"}
		got := NextFromExisting("PAMCH-25-JUL-", existing)
		if got != "PAMCH-25-JUL-0004" {
			t.Fatalf("NextFromExisting = %q, want PAMCH-25-JUL-0004", got)
		}
	})

	t.Run("consecutive issues advance one at a time", func(t *testing.T) {
		existing := []string{"PAMCH-25-JUL-0007"}

		first := NextFromExisting("PAMCH-25-JUL-", existing)
		if first != "PAMCH-25-JUL-0008" {
			t.Fatalf("NextFromExisting = %q, want PAMCH-25-JUL-0008", first)
		}

		existing = append(existing, first)
		second := NextFromExisting("PAMCH-25-JUL-", existing)
		if second != "PAMCH-25-JUL-0009" {
			t.Fatalf("NextFromExisting = %q, want PAMCH-25-JUL-0009", second)
		}
	})
}
