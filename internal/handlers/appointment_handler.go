package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/httpresp"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
	usecase "github.com/barbermx/appointment-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	repo domain.Repository

	confirm     *usecase.ConfirmAppointment
	cancel      *usecase.CancelAppointment
	complete    *usecase.CompleteAppointment
	markPaid    *usecase.MarkPaid
	listByDate  *usecase.ListAppointmentsByDate
	listByMonth *usecase.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	confirm *usecase.ConfirmAppointment,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	markPaid *usecase.MarkPaid,
	listByDate *usecase.ListAppointmentsByDate,
	listByMonth *usecase.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		repo:        repo,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
		markPaid:    markPaid,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// BARBEIRO
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), barber.ID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), barber.ID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id, barber.ID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, barber.ID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) CancelAsBarber(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, barber.ID, models.RoleBarber)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (h *AppointmentHandler) MarkPaid(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.markPaid.Execute(c.Request.Context(), id, barber.ID, req.PaymentMethod)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CLIENTE
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	appointments, err := h.repo.ListAppointmentsForClient(c.Request.Context(), session.ProfileID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) CancelAsClient(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, session.ProfileID, models.RoleClient)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
