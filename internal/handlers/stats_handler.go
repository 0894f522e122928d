package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

// ======================================================
// HANDLER (painel do admin)
// ======================================================

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type BarberStats struct {
	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`

	TotalAppointments int64 `json:"total_appointments"`
	Completed         int64 `json:"completed"`
	Cancelled         int64 `json:"cancelled"`

	CashEarnings   float64 `json:"cash_earnings"`
	OnlineEarnings float64 `json:"online_earnings"`

	DaysWorked int64 `json:"days_worked"`
}

// BarberStats agrega números de um barbeiro num período [from, to].
// Receita só conta agendamentos concluídos e pagos.
func (h *StatsHandler) BarberStats(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "invalid_period", "Informe from e to (YYYY-MM-DD).")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("Profile").First(&barber, uint(barberID)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	stats := BarberStats{
		BarberID:   barber.ID,
		BarberName: barber.Profile.FullName,
	}

	base := h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			barber.ID, from, to)

	if err := base.Session(&gorm.Session{}).
		Count(&stats.TotalAppointments).Error; err != nil {
		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	base.Session(&gorm.Session{}).
		Where("status = ?", "completed").
		Count(&stats.Completed)

	base.Session(&gorm.Session{}).
		Where("status = ?", "cancelled").
		Count(&stats.Cancelled)

	earnings := func(method string) float64 {
		var sum float64
		h.db.Model(&models.Appointment{}).
			Where("barber_id = ? AND appointment_date >= ? AND appointment_date <= ?",
				barber.ID, from, to).
			Where("status = ? AND payment_status = ? AND payment_method = ?",
				"completed", "paid", method).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&sum)
		return sum
	}

	stats.CashEarnings = earnings("cash")
	stats.OnlineEarnings = earnings("online")

	h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			barber.ID, from, to).
		Where("status = ?", "completed").
		Distinct("appointment_date").
		Count(&stats.DaysWorked)

	c.JSON(http.StatusOK, stats)
}
