package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	ap.Status = string(domain.StatusCompleted)
	ap.CompletedAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
