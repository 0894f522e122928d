package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusConfirmed)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
