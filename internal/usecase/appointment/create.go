package appointment

import (
	"context"
	"time"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	PaymentMethod string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string

	// injetável para testes determinísticos
	Now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
		Now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if _, err := domain.ParseClock(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// O horário escolhido precisa estar na lista de slots calculada
	// agora; isso cobre dia desativado, fora da janela, já ocupado
	// e horário passado de uma vez só.
	booked, err := uc.repo.ListBookedStartTimes(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	day, _ := barber.WorkSchedule.ForDate(date)

	slots, err := domain.AvailableSlots(domain.SlotInput{
		Day:             day,
		ServiceDuration: service.DurationMin,
		Booked:          booked,
		Date:            date,
		Now:             uc.Now(),
	})
	if err != nil {
		return nil, err
	}

	if !contains(slots, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	end, err := domain.EndTimeFor(in.Time, service.DurationMin)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,

		AppointmentDate: in.Date,
		StartTime:       in.Time,
		EndTime:         end,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
		PaymentMethod: string(method),

		TotalAmount: service.Price,
		Notes:       in.Notes,
	}

	// pode devolver slot_conflict se outro cliente ganhou a corrida
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func contains(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
