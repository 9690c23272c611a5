package schedule

import (
	"errors"
	"testing"
)

func TestDurationMinutes_Base(t *testing.T) {
	sel := ServiceSelection{}
	if got := sel.DurationMinutes(); got != 90 {
		t.Fatalf("expected base duration 90, got %d", got)
	}
}

func TestDurationMinutes_Addons(t *testing.T) {
	cases := []struct {
		name string
		sel  ServiceSelection
		want int
	}{
		{"hard design", ServiceSelection{HardDesign: true}, 150},
		{"pedi spa", ServiceSelection{PediSpa: true}, 135},
		{"eyebrows", ServiceSelection{Eyebrows: true}, 150},
		{"hard design + pedi spa", ServiceSelection{HardDesign: true, PediSpa: true}, 195},
		{"all", ServiceSelection{HardDesign: true, PediSpa: true, Eyebrows: true}, 255},
	}

	for _, tc := range cases {
		if got := tc.sel.DurationMinutes(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestDurationMinutes_MonotonicInFlags(t *testing.T) {
	// Enabling any flag must never shorten the appointment.
	base := ServiceSelection{}
	flagged := []ServiceSelection{
		{HardDesign: true},
		{PediSpa: true},
		{Eyebrows: true},
		{HardDesign: true, Eyebrows: true},
		{HardDesign: true, PediSpa: true, Eyebrows: true},
	}
	for _, sel := range flagged {
		if sel.DurationMinutes() < base.DurationMinutes() {
			t.Fatalf("selection %+v shorter than base", sel)
		}
	}
}

func TestComputeEnd_BaseDuration(t *testing.T) {
	end, err := ComputeEnd("09:00 AM", ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "10:30 AM" {
		t.Fatalf("expected %q, got %q", "10:30 AM", end)
	}
}

func TestComputeEnd_WithHardDesign(t *testing.T) {
	end, err := ComputeEnd("09:00 AM", ServiceSelection{HardDesign: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "11:30 AM" {
		t.Fatalf("expected %q, got %q", "11:30 AM", end)
	}
}

func TestComputeEnd_MeridiemRollover(t *testing.T) {
	end, err := ComputeEnd("11:00 AM", ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "12:30 PM" {
		t.Fatalf("expected %q, got %q", "12:30 PM", end)
	}
}

func TestComputeEnd_MidnightWrap(t *testing.T) {
	// Only the clock component matters downstream; the date wraps silently.
	end, err := ComputeEnd("11:00 PM", ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "12:30 AM" {
		t.Fatalf("expected %q, got %q", "12:30 AM", end)
	}
}

func TestComputeEnd_Malformed(t *testing.T) {
	for _, input := range []string{"", "25:00", "09:00", "garbage", "09:00 XX"} {
		if _, err := ComputeEnd(input, ServiceSelection{}); !errors.Is(err, ErrMalformedTime) {
			t.Fatalf("input %q: expected ErrMalformedTime, got %v", input, err)
		}
	}
}

func TestParseClock_TrimsAndUppercases(t *testing.T) {
	got, err := ParseClock("  07:00 am ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatClock(got) != "07:00 AM" {
		t.Fatalf("expected %q, got %q", "07:00 AM", FormatClock(got))
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("05/03/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "05/03/2026" {
		t.Fatalf("expected %q, got %q", "05/03/2026", FormatDate(d))
	}

	if _, err := ParseDate("2026-03-05"); !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
}
