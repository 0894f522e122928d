package appointment

import (
	"testing"
	"time"

	"github.com/barbermx/appointment-api/internal/httperr"
)

func TestDayName(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-09-13", "sunday"},
		{"2026-09-14", "monday"},
		{"2026-09-15", "tuesday"},
		{"2026-09-16", "wednesday"},
		{"2026-09-17", "thursday"},
		{"2026-09-18", "friday"},
		{"2026-09-19", "saturday"},
	}

	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatalf("bad date %q: %v", c.date, err)
		}
		if got := DayName(d); got != c.want {
			t.Errorf("%s: got %q, want %q", c.date, got, c.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"09-00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if !httperr.IsBusiness(err, "invalid_schedule_format") {
				t.Errorf("%q: expected invalid_schedule_format, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Errorf("got %q, want 09:30", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Errorf("got %q, want 00:00", got)
	}
}

func TestDayScheduleValidate(t *testing.T) {
	// dia desativado passa mesmo com janela lixo
	d := DaySchedule{Enabled: false, Start: "xx", End: "yy"}
	if err := d.Validate(); err != nil {
		t.Errorf("disabled day should validate, got %v", err)
	}

	d = DaySchedule{Enabled: true, Start: "10:00", End: "09:00"}
	if err := d.Validate(); !httperr.IsBusiness(err, "invalid_schedule") {
		t.Errorf("expected invalid_schedule, got %v", err)
	}

	d = DaySchedule{Enabled: true, Start: "09:00", End: "09:00"}
	if err := d.Validate(); !httperr.IsBusiness(err, "invalid_schedule") {
		t.Errorf("start == end: expected invalid_schedule, got %v", err)
	}

	d = DaySchedule{Enabled: true, Start: "09:00", End: "18:00"}
	if err := d.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWorkScheduleValidate(t *testing.T) {
	ws := WorkSchedule{
		"monday": {Enabled: true, Start: "09:00", End: "18:00"},
		"lunes":  {Enabled: true, Start: "09:00", End: "18:00"},
	}
	if err := ws.Validate(); !httperr.IsBusiness(err, "invalid_schedule_day") {
		t.Errorf("expected invalid_schedule_day, got %v", err)
	}

	ws = WorkSchedule{
		"monday":  {Enabled: true, Start: "09:00", End: "18:00"},
		"tuesday": {Enabled: false},
	}
	if err := ws.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWorkScheduleForDate(t *testing.T) {
	ws := WorkSchedule{
		"monday": {Enabled: true, Start: "09:00", End: "18:00"},
		"sunday": {Enabled: false, Start: "09:00", End: "12:00"},
	}

	monday, _ := time.Parse("2006-01-02", "2026-09-14")
	if day, ok := ws.ForDate(monday); !ok || day.Start != "09:00" {
		t.Errorf("monday: got (%v, %v)", day, ok)
	}

	// desativado conta como ausente
	sunday, _ := time.Parse("2006-01-02", "2026-09-13")
	if _, ok := ws.ForDate(sunday); ok {
		t.Error("disabled sunday should not be available")
	}

	// dia não configurado
	tuesday, _ := time.Parse("2006-01-02", "2026-09-15")
	if _, ok := ws.ForDate(tuesday); ok {
		t.Error("missing tuesday should not be available")
	}
}
