package appointment

import (
	"time"

	"github.com/barbermx/appointment-api/internal/models"
)

// Os tipos e helpers de agenda vivem em internal/models (o Barber os
// referencia na coluna jsonb); aliases mantêm o nome domain.WorkSchedule.

type DaySchedule = models.DaySchedule

type WorkSchedule = models.WorkSchedule

var ErrInvalidScheduleFormat = models.ErrInvalidScheduleFormat

func DayName(t time.Time) string {
	return models.DayName(t)
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	return models.ParseClock(s)
}

func FormatClock(minutes int) string {
	return models.FormatClock(minutes)
}
