package appointment

import (
	"reflect"
	"testing"
	"time"

	"github.com/barbermx/appointment-api/internal/httperr"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// dia cheio, serviço de 30min, nada ocupado
func TestAvailableSlotsFullDay(t *testing.T) {
	date := mustDate(t, "2026-09-14") // segunda
	now := mustDate(t, "2026-09-10")

	slots, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "12:00"},
		ServiceDuration: 30,
		Date:            date,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("got %v, want %v", slots, want)
	}
}

// serviço de 45min num expediente curto: o último candidato precisa
// caber inteiro dentro da janela
func TestAvailableSlotsLongServiceFits(t *testing.T) {
	date := mustDate(t, "2026-09-14")
	now := mustDate(t, "2026-09-10")

	slots, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "11:00"},
		ServiceDuration: 45,
		Date:            date,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10:30 não entra: 10:30+45min passa das 11:00
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("got %v, want %v", slots, want)
	}
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	date := mustDate(t, "2026-09-14")
	now := mustDate(t, "2026-09-10")

	slots, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "11:00"},
		ServiceDuration: 30,
		Booked:          []string{"09:30", "10:30:00"}, // segundo vem com segundos
		Date:            date,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("got %v, want %v", slots, want)
	}
}

func TestAvailableSlotsDisabledDay(t *testing.T) {
	date := mustDate(t, "2026-09-13") // domingo

	slots, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{},
		ServiceDuration: 30,
		Date:            date,
		Now:             mustDate(t, "2026-09-10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}

// hoje: horários que já passaram não aparecem; os futuros sim
func TestAvailableSlotsSameDayCutsPast(t *testing.T) {
	date := mustDate(t, "2026-09-14")
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	slots, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "12:00"},
		ServiceDuration: 30,
		Date:            date,
		Now:             now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10:00 em ponto também cai: só estritamente no futuro
	want := []string{"10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("got %v, want %v", slots, want)
	}
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	_, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "12:00"},
		ServiceDuration: 0,
		Date:            mustDate(t, "2026-09-14"),
		Now:             mustDate(t, "2026-09-10"),
	})
	if !httperr.IsBusiness(err, "invalid_duration") {
		t.Errorf("expected invalid_duration, got %v", err)
	}
}

func TestAvailableSlotsMalformedWindow(t *testing.T) {
	_, err := AvailableSlots(SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "9h00", End: "12:00"},
		ServiceDuration: 30,
		Date:            mustDate(t, "2026-09-14"),
		Now:             mustDate(t, "2026-09-10"),
	})
	if !httperr.IsBusiness(err, "invalid_schedule_format") {
		t.Errorf("expected invalid_schedule_format, got %v", err)
	}
}

// função pura: chamadas repetidas com o mesmo input dão o mesmo output
func TestAvailableSlotsDeterministic(t *testing.T) {
	in := SlotInput{
		Day:             DaySchedule{Enabled: true, Start: "09:00", End: "13:00"},
		ServiceDuration: 60,
		Booked:          []string{"10:00"},
		Date:            mustDate(t, "2026-09-14"),
		Now:             mustDate(t, "2026-09-10"),
	}

	first, err := AvailableSlots(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := AvailableSlots(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: got %v, want %v", i, again, first)
		}
	}
}

func TestEndTimeFor(t *testing.T) {
	end, err := EndTimeFor("10:30", 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "11:15" {
		t.Errorf("got %q, want 11:15", end)
	}

	if _, err := EndTimeFor("25:00", 30); err == nil {
		t.Error("expected error for invalid start")
	}
}
