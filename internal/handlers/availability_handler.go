package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/timezone"
	usecase "github.com/barbermx/appointment-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availability *usecase.GetAvailability
	tz           string
}

func NewAvailabilityHandler(
	availability *usecase.GetAvailability,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		tz:           tz,
	}
}

// Get devolve os horários livres de um barbeiro num dia, já filtrados
// pela duração do serviço escolhido.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, err1 := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id e service_id são obrigatórios.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		c.Query("date"),
		timezone.Location(h.tz),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  c.Query("date"),
		"slots": slots,
	})
}
