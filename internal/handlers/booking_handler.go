package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barbermx/appointment-api/internal/booking"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/httpresp"
	"github.com/barbermx/appointment-api/internal/middleware"
	usecase "github.com/barbermx/appointment-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
//
// Fluxo de reserva em cinco passos guiado por sessão no Redis.
// Nada é gravado no banco antes do submit.
// ======================================================

type BookingHandler struct {
	store  *booking.Store
	create *usecase.CreateAppointment
}

func NewBookingHandler(
	store *booking.Store,
	create *usecase.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		store:  store,
		create: create,
	}
}

func (h *BookingHandler) session(c *gin.Context) (*booking.Wizard, bool) {
	auth, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return nil, false
	}

	w, err := h.store.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeBusinessError(c, err)
		return nil, false
	}

	// a sessão de reserva pertence a um cliente
	if w.ClientID != auth.ProfileID {
		httperr.Forbidden(c, "forbidden", "Sessão pertence a outro cliente.")
		return nil, false
	}

	return w, true
}

func (h *BookingHandler) save(c *gin.Context, w *booking.Wizard) bool {
	if err := h.store.Save(c.Request.Context(), w); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Erro ao salvar sessão.")
		return false
	}
	return true
}

// releaseHold solta o hold do slot atual, se houver.
func (h *BookingHandler) releaseHold(c *gin.Context, w *booking.Wizard) {
	if w.BarberID != 0 && w.Date != "" && w.Time != "" {
		_ = h.store.ReleaseSlot(c.Request.Context(), w.BarberID, w.Date, w.Time, w.SessionID)
	}
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	auth, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	w := booking.New(uuid.NewString(), auth.ProfileID)
	if !h.save(c, w) {
		return
	}

	httpresp.Created(c, w)
}

func (h *BookingHandler) Get(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, w)
}

type SelectServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

func (h *BookingHandler) SelectService(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// trocar de serviço invalida o horário escolhido antes
	h.releaseHold(c, w)

	if err := w.SelectService(req.ServiceID); err != nil {
		writeBusinessError(c, err)
		return
	}

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

type SelectBarberRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`
}

func (h *BookingHandler) SelectBarber(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.releaseHold(c, w)

	if err := w.SelectBarber(req.BarberID); err != nil {
		writeBusinessError(c, err)
		return
	}

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

type SelectDatetimeRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *BookingHandler) SelectDatetime(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectDatetimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if w.Step != booking.StepDatetime {
		writeBusinessError(c, httperr.ErrBusiness("invalid_step"))
		return
	}

	// hold consultivo: evita dois clientes montando o mesmo horário;
	// a autoridade final continua sendo a transação de criação
	held, err := h.store.HoldSlot(c.Request.Context(), w.BarberID, req.Date, req.Time, w.SessionID)
	if err != nil {
		httperr.Internal(c, "failed_to_hold_slot", "Erro ao reservar horário.")
		return
	}
	if !held {
		writeBusinessError(c, httperr.ErrBusiness("slot_held"))
		return
	}

	h.releaseHold(c, w)

	if err := w.SelectDatetime(req.Date, req.Time); err != nil {
		_ = h.store.ReleaseSlot(c.Request.Context(), w.BarberID, req.Date, req.Time, w.SessionID)
		writeBusinessError(c, err)
		return
	}

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *BookingHandler) SelectPayment(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := w.SelectPayment(req.PaymentMethod); err != nil {
		writeBusinessError(c, err)
		return
	}
	w.Notes = req.Notes

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *BookingHandler) Next(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	if err := w.Next(); err != nil {
		writeBusinessError(c, err)
		return
	}

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

// Back volta um passo; no primeiro passo cancela o fluxo inteiro.
func (h *BookingHandler) Back(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	if cancelled := w.Back(); cancelled {
		h.releaseHold(c, w)
		_ = h.store.Delete(c.Request.Context(), w.SessionID)
		c.JSON(http.StatusOK, gin.H{"cancelled": true})
		return
	}

	if !h.save(c, w) {
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	h.releaseHold(c, w)
	if err := h.store.Delete(c.Request.Context(), w.SessionID); err != nil {
		httperr.Internal(c, "failed_to_delete_session", "Erro ao cancelar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// Submit cria o agendamento de verdade; só funciona no passo de
// confirmação. slot_conflict aqui significa que outro cliente ganhou
// a corrida entre o hold e o insert.
func (h *BookingHandler) Submit(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	if !w.CanSubmit() {
		writeBusinessError(c, httperr.ErrBusiness("invalid_step"))
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ClientID:      w.ClientID,
		BarberID:      w.BarberID,
		ServiceID:     w.ServiceID,
		Date:          w.Date,
		Time:          w.Time,
		PaymentMethod: w.PaymentMethod,
		Notes:         w.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.releaseHold(c, w)
	_ = h.store.Delete(c.Request.Context(), w.SessionID)

	httpresp.Created(c, ap)
}
