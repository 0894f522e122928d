package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/audit"
	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ApplyProviderPaymentInput struct {
	AppointmentID     uint
	ProviderPaymentID string
	ProviderStatus    string
	Amount            float64
}

// ======================================================
// USE CASE
// ======================================================

// ApplyProviderPayment é o lado do webhook: aplica a notificação do
// provedor sobre o agendamento e grava o registro no ledger.
type ApplyProviderPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApplyProviderPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApplyProviderPayment {
	return &ApplyProviderPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApplyProviderPayment) Execute(
	ctx context.Context,
	in ApplyProviderPaymentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	newStatus := domain.MapProviderStatus(in.ProviderStatus)

	ap.PaymentStatus = string(newStatus)
	ap.PaymentID = in.ProviderPaymentID
	ap.PaymentMethod = string(domain.MethodOnline)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		AppointmentID:     ap.ID,
		Amount:            in.Amount,
		PaymentMethod:     string(domain.MethodOnline),
		PaymentProvider:   "mercadopago",
		PaymentProviderID: in.ProviderPaymentID,
		Status:            domain.PaymentRecordStatus(newStatus),
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_provider_notification",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"provider_status":     in.ProviderStatus,
			"provider_payment_id": in.ProviderPaymentID,
		},
	})

	return ap, nil
}
