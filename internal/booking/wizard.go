package booking

import "github.com/barbermx/appointment-api/internal/httperr"

// ======================================================
// Fluxo linear de reserva
// service → barber → datetime → payment → confirm
// ======================================================

type Step string

const (
	StepService  Step = "service"
	StepBarber   Step = "barber"
	StepDatetime Step = "datetime"
	StepPayment  Step = "payment"
	StepConfirm  Step = "confirm"
)

var stepOrder = []Step{
	StepService,
	StepBarber,
	StepDatetime,
	StepPayment,
	StepConfirm,
}

// Wizard acumula as seleções do cliente; nada é persistido
// antes do submit no passo de confirmação.
type Wizard struct {
	SessionID string `json:"session_id"`
	ClientID  uint   `json:"client_id"`
	Step      Step   `json:"step"`

	ServiceID     uint   `json:"service_id,omitempty"`
	BarberID      uint   `json:"barber_id,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func New(sessionID string, clientID uint) *Wizard {
	return &Wizard{
		SessionID: sessionID,
		ClientID:  clientID,
		Step:      StepService,
	}
}

// StepComplete é o predicado de completude do passo atual.
// O passo confirm não tem predicado.
func (w *Wizard) StepComplete() bool {
	switch w.Step {
	case StepService:
		return w.ServiceID != 0
	case StepBarber:
		return w.BarberID != 0
	case StepDatetime:
		return w.Date != "" && w.Time != ""
	case StepPayment:
		return w.PaymentMethod != ""
	case StepConfirm:
		return true
	}
	return false
}

func (w *Wizard) stepIndex() int {
	for i, s := range stepOrder {
		if s == w.Step {
			return i
		}
	}
	return 0
}

// Next avança um passo; bloqueado enquanto o passo atual está incompleto.
func (w *Wizard) Next() error {
	if !w.StepComplete() {
		return httperr.ErrBusiness("step_incomplete")
	}

	i := w.stepIndex()
	if i >= len(stepOrder)-1 {
		return httperr.ErrBusiness("invalid_step")
	}

	w.Step = stepOrder[i+1]
	return nil
}

// Back volta um passo. No primeiro passo devolve true: o fluxo
// inteiro deve ser cancelado pelo chamador.
func (w *Wizard) Back() bool {
	i := w.stepIndex()
	if i == 0 {
		return true
	}

	w.Step = stepOrder[i-1]
	return false
}

// ======================================================
// Seleções por passo
// ======================================================

func (w *Wizard) SelectService(serviceID uint) error {
	if w.Step != StepService {
		return httperr.ErrBusiness("invalid_step")
	}
	w.ServiceID = serviceID
	// a duração do serviço muda a grade; horário anterior cai
	w.Date = ""
	w.Time = ""
	return nil
}

func (w *Wizard) SelectBarber(barberID uint) error {
	if w.Step != StepBarber {
		return httperr.ErrBusiness("invalid_step")
	}
	w.BarberID = barberID
	w.Date = ""
	w.Time = ""
	return nil
}

func (w *Wizard) SelectDatetime(date, slot string) error {
	if w.Step != StepDatetime {
		return httperr.ErrBusiness("invalid_step")
	}
	w.Date = date
	w.Time = slot
	return nil
}

func (w *Wizard) SelectPayment(method string) error {
	if w.Step != StepPayment {
		return httperr.ErrBusiness("invalid_step")
	}
	w.PaymentMethod = method
	return nil
}

// CanSubmit: o create-appointment só roda no passo de confirmação.
func (w *Wizard) CanSubmit() bool {
	return w.Step == StepConfirm
}
