package entity

import "testing"

func TestAppointmentIsPending(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusSeen, false},
		{AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		a := Appointment{Status: tc.status}
		if got := a.IsPending(); got != tc.want {
			t.Errorf("IsPending() with status %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}
