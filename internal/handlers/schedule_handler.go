package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
)

// ScheduleHandler: o barbeiro gerencia a própria agenda semanal.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// barberFromSession resolve a linha de barbeiro a partir do perfil logado.
func barberFromSession(c *gin.Context, db *gorm.DB) (*models.Barber, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return nil, false
	}

	var barber models.Barber
	if err := db.Where("profile_id = ?", session.ProfileID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}

	return &barber, true
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_schedule": barber.WorkSchedule})
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	barber, ok := barberFromSession(c, h.db)
	if !ok {
		return
	}

	var schedule domain.WorkSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		httperr.BadRequest(c, "invalid_schedule_format", "Formato de agenda inválido.")
		return
	}

	if err := schedule.Validate(); err != nil {
		if code, ok := httperr.AnyBusiness(err); ok {
			httperr.BadRequest(c, code, "Agenda inválida.")
			return
		}
		httperr.BadRequest(c, "invalid_schedule", "Agenda inválida.")
		return
	}

	barber.WorkSchedule = schedule
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Erro ao salvar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_schedule": barber.WorkSchedule})
}
