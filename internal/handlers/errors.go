package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbermx/appointment-api/internal/httperr"
)

// mensagens por código de negócio; o código em si é o contrato da API
var businessMessages = map[string]string{
	"barber_not_found":          "Barbeiro não encontrado.",
	"service_not_found":         "Serviço não encontrado.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"booking_session_not_found": "Sessão de reserva não encontrada ou expirada.",
	"slot_unavailable":          "Horário indisponível.",
	"slot_conflict":             "Horário acabou de ser ocupado.",
	"slot_held":                 "Horário reservado por outro cliente.",
	"invalid_state":             "Transição de status inválida.",
	"invalid_payment_state":     "Status de pagamento inválido.",
	"invalid_payment_method":    "Método de pagamento inválido.",
	"invalid_date_or_time":      "Data ou hora inválida.",
	"invalid_duration":          "Duração de serviço inválida.",
	"invalid_schedule_format":   "Formato de agenda inválido.",
	"invalid_schedule":          "Agenda inválida.",
	"invalid_schedule_day":      "Dia de agenda inválido.",
	"invalid_step":              "Operação não permitida neste passo.",
	"step_incomplete":           "Complete o passo atual antes de avançar.",
	"forbidden":                 "Acesso negado.",
}

// writeBusinessError traduz um erro de negócio em resposta HTTP.
// Erros não-negócio viram 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.AnyBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Operação inválida."
	}

	switch code {
	case "barber_not_found", "service_not_found",
		"appointment_not_found", "booking_session_not_found":
		httperr.NotFound(c, code, msg)
	case "slot_conflict", "slot_held", "invalid_state", "invalid_payment_state":
		httperr.Conflict(c, code, msg)
	case "forbidden":
		httperr.Forbidden(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
