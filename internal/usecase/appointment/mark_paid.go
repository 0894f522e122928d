package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute registra manualmente um pagamento recebido pelo barbeiro.
// Não é condicionado ao status do agendamento, só ao status de pagamento.
func (uc *MarkPaid) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
	method string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanMarkPaid(domain.PaymentStatus(ap.PaymentStatus)); err != nil {
		return nil, err
	}

	m, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	ap.PaymentStatus = string(domain.PaymentPaid)
	ap.PaymentMethod = string(m)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "payment_marked_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"method": string(m)},
	})

	return ap, nil
}
