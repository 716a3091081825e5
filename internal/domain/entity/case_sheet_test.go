package entity

import (
	"testing"
)

func TestStringListValue(t *testing.T) {
	t.Run("empty list stores null", func(t *testing.T) {
		var l StringList
		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v != nil {
			t.Fatalf("Value = %v, want nil", v)
		}
	})

	t.Run("marshals to json array", func(t *testing.T) {
		l := StringList{"Triphala churna", "Ashwagandha"}
		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if string(v.([]byte)) != `["Triphala churna","Ashwagandha"]` {
			t.Fatalf("Value = %s", v)
		}
	})
}

func TestStringListScan(t *testing.T) {
	t.Run("null scans to nil", func(t *testing.T) {
		var l StringList
		if err := l.Scan(nil); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if l != nil {
			t.Fatalf("Scan = %v, want nil", l)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		var l StringList
		if err := l.Scan([]byte(`["a","b"]`)); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if len(l) != 2 || l[0] != "a" || l[1] != "b" {
			t.Fatalf("Scan = %v", l)
		}
	})

	t.Run("rejects non-json types", func(t *testing.T) {
		var l StringList
		if err := l.Scan(42); err == nil {
			t.Fatal("expected error for int input")
		}
	})
}

func TestValidRole(t *testing.T) {
	for _, role := range []StaffRole{RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleTechnician, RoleReceptionist, RoleTherapist} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}

	if ValidRole("patient") {
		t.Error("ValidRole(patient) = true, want false")
	}
	if ValidRole("") {
		t.Error("ValidRole(empty) = true, want false")
	}
}
