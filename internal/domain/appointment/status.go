package appointment

import "github.com/barbermx/appointment-api/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal: nenhuma transição sai de completed ou cancelled.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validações de transição
// ===============================

// CanConfirm: só um agendamento pendente pode ser confirmado (barbeiro).
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pendente ou confirmado podem ser cancelados.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só um agendamento confirmado pode ser concluído.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Status de pagamento (dimensão ortogonal)
// ===============================

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash:
		return MethodCash, nil
	case MethodOnline:
		return MethodOnline, nil
	}
	return "", httperr.ErrBusiness("invalid_payment_method")
}

// CanMarkPaid: registro manual de pagamento só a partir de pendente.
func CanMarkPaid(current PaymentStatus) error {
	if current != PaymentPending {
		return httperr.ErrBusiness("invalid_payment_state")
	}
	return nil
}

// MapProviderStatus traduz o status do Mercado Pago para o nosso.
// approved → paid, refunded → refunded, qualquer outro → pending.
func MapProviderStatus(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved":
		return PaymentPaid
	case "refunded":
		return PaymentRefunded
	}
	return PaymentPending
}

// PaymentRecordStatus é o status gravado no ledger de pagamentos.
func PaymentRecordStatus(ps PaymentStatus) string {
	switch ps {
	case PaymentPaid:
		return "completed"
	case PaymentRefunded:
		return "refunded"
	}
	return "pending"
}
