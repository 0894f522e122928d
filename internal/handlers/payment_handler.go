package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/payments"
	usecase "github.com/barbermx/appointment-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	repo    domain.Repository
	gateway *payments.Gateway
	apply   *usecase.ApplyProviderPayment
}

func NewPaymentHandler(
	repo domain.Repository,
	gateway *payments.Gateway,
	apply *usecase.ApplyProviderPayment,
) *PaymentHandler {
	return &PaymentHandler{
		repo:    repo,
		gateway: gateway,
		apply:   apply,
	}
}

// ======================================================
// PREFERÊNCIA DE CHECKOUT
// ======================================================

type CreatePreferenceRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`

	// opcionais; quando ausentes saem do próprio agendamento
	Title       string `json:"title"`
	Description string `json:"description"`
	ClientEmail string `json:"client_email"`
	ClientName  string `json:"client_name"`
}

// preferenceInput monta o pedido pro provedor: campos ausentes no body
// saem do agendamento (Client e Service vêm pré-carregados do repositório);
// o valor cobrado é sempre o snapshot, nunca o do request.
func preferenceInput(req CreatePreferenceRequest, ap *models.Appointment) payments.PreferenceInput {
	in := payments.PreferenceInput{
		AppointmentID: strconv.FormatUint(uint64(ap.ID), 10),
		Title:         req.Title,
		Description:   req.Description,
		Price:         ap.TotalAmount,
		ClientEmail:   req.ClientEmail,
		ClientName:    req.ClientName,
	}
	if in.Title == "" {
		in.Title = ap.Service.Name
	}
	if in.Description == "" {
		in.Description = ap.Service.Description
	}
	if in.ClientEmail == "" {
		in.ClientEmail = ap.Client.Email
	}
	if in.ClientName == "" {
		in.ClientName = ap.Client.FullName
	}
	return in
}

func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	if h.gateway == nil {
		httperr.Internal(c, "mercadopago_not_configured", "Pagamento online não configurado.")
		return
	}

	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.repo.GetAppointmentForClient(c.Request.Context(), req.AppointmentID, session.ProfileID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	pref, err := h.gateway.CreatePreference(c.Request.Context(), preferenceInput(req, ap))
	if err != nil {
		httperr.Internal(c, "failed_to_create_preference", "Erro ao criar preferência de pagamento.")
		return
	}

	c.JSON(http.StatusOK, pref)
}

// ======================================================
// WEBHOOK
// ======================================================

type WebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook recebe notificações do Mercado Pago. Tipos que não são
// `payment` são aceitos com 200 pra evitar redelivery infinito.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.gateway == nil {
		httperr.Internal(c, "mercadopago_not_configured", "Pagamento online não configurado.")
		return
	}

	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Payload inválido.")
		return
	}

	if req.Type != "payment" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if req.Data.ID == "" {
		httperr.BadRequest(c, "missing_payment_id", "ID de pagamento ausente.")
		return
	}

	providerID, err := strconv.Atoi(req.Data.ID)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "ID de pagamento inválido.")
		return
	}

	// a notificação só carrega o id; o status vem da consulta
	detail, err := h.gateway.GetPayment(c.Request.Context(), providerID)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_payment", "Erro ao consultar pagamento.")
		return
	}

	if detail.ExternalReference == "" {
		httperr.BadRequest(c, "missing_external_reference", "Pagamento sem referência de agendamento.")
		return
	}

	appointmentID, err := strconv.ParseUint(detail.ExternalReference, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_external_reference", "Referência de agendamento inválida.")
		return
	}

	if _, err := h.apply.Execute(c.Request.Context(), usecase.ApplyProviderPaymentInput{
		AppointmentID:     uint(appointmentID),
		ProviderPaymentID: req.Data.ID,
		ProviderStatus:    detail.Status,
		Amount:            detail.TransactionAmount,
	}); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
