package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute cancela um agendamento.
//
// Barbeiro cancela pendente ou confirmado; cliente só cancela pendente.
// actorID é o Barber.ID quando o papel é barbeiro, Profile.ID quando cliente.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	actorRole models.Role,
) (*models.Appointment, error) {

	var (
		ap  *models.Appointment
		err error
	)

	switch actorRole {
	case models.RoleBarber:
		ap, err = uc.repo.GetAppointmentForBarber(ctx, appointmentID, actorID)
	case models.RoleClient:
		ap, err = uc.repo.GetAppointmentForClient(ctx, appointmentID, actorID)
	default:
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	status := domain.Status(ap.Status)
	if err := domain.CanCancel(status); err != nil {
		return nil, err
	}

	// confirmado só pode ser cancelado pelo barbeiro
	if actorRole == models.RoleClient && status != domain.StatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	now := timezone.NowIn(uc.tz)
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
