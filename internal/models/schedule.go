package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/barbermx/appointment-api/internal/httperr"
)

// ===============================
// Agenda semanal do barbeiro
// ===============================

// chaves fixas por dia da semana; índice 0 = domingo (time.Sunday)
var dayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

type DaySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type WorkSchedule map[string]DaySchedule

// ForDate resolve o dia da semana da data e devolve a janela de expediente.
// Dia ausente ou desativado = barbeiro não atende.
func (ws WorkSchedule) ForDate(date time.Time) (DaySchedule, bool) {
	day, ok := ws[DayName(date)]
	if !ok || !day.Enabled {
		return DaySchedule{}, false
	}
	return day, true
}

var ErrInvalidScheduleFormat = httperr.ErrBusiness("invalid_schedule_format")

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidScheduleFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidScheduleFormat
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, ErrInvalidScheduleFormat
	}
	return h*60 + m, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Validate garante start < end quando o dia está ativo.
func (d DaySchedule) Validate() error {
	if !d.Enabled {
		return nil
	}

	start, err := ParseClock(d.Start)
	if err != nil {
		return err
	}

	end, err := ParseClock(d.End)
	if err != nil {
		return err
	}

	if start >= end {
		return httperr.ErrBusiness("invalid_schedule")
	}
	return nil
}

// Validate rejeita chaves fora do conjunto fixo de dias e janelas inválidas.
func (ws WorkSchedule) Validate() error {
	known := make(map[string]bool, len(dayNames))
	for _, d := range dayNames {
		known[d] = true
	}

	for key, day := range ws {
		if !known[key] {
			return httperr.ErrBusiness("invalid_schedule_day")
		}
		if err := day.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ===============================
// Persistência (coluna jsonb)
// ===============================

func (ws WorkSchedule) Value() (driver.Value, error) {
	if ws == nil {
		return nil, nil
	}
	return json.Marshal(ws)
}

func (ws *WorkSchedule) Scan(value any) error {
	if value == nil {
		*ws = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ws)
	case string:
		return json.Unmarshal([]byte(v), ws)
	}

	return fmt.Errorf("work_schedule: unsupported column type %T", value)
}
