package appointment

import (
	"time"

	"github.com/barbermx/appointment-api/internal/httperr"
)

// Passo fixo de 30 minutos independente da duração do serviço,
// para manter os horários alinhados entre serviços diferentes.
const SlotStepMinutes = 30

type SlotInput struct {
	Day             DaySchedule
	ServiceDuration int      // minutos
	Booked          []string // "HH:MM" já ocupados (exclui cancelados)
	Date            time.Time
	Now             time.Time
}

// AvailableSlots calcula os horários livres de um barbeiro para uma data.
// Função pura: mesmo input, mesmo output.
//
// Garantias:
//   - nunca devolve horário fora de [start, end - duração]
//   - nunca devolve horário já ocupado
//   - nunca devolve horário passado quando a data é hoje
func AvailableSlots(in SlotInput) ([]string, error) {
	if !in.Day.Enabled {
		return []string{}, nil
	}

	if in.ServiceDuration <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	startMin, err := ParseClock(in.Day.Start)
	if err != nil {
		return nil, err
	}

	endMin, err := ParseClock(in.Day.End)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(in.Booked))
	for _, b := range in.Booked {
		// trunca "HH:MM:SS" para precisão de minuto
		if len(b) > 5 {
			b = b[:5]
		}
		booked[b] = struct{}{}
	}

	now := in.Now.In(in.Date.Location())
	sameDay := in.Date.Year() == now.Year() && in.Date.YearDay() == now.YearDay()

	slots := []string{}
	for t := startMin; t+in.ServiceDuration <= endMin; t += SlotStepMinutes {
		s := FormatClock(t)

		if _, taken := booked[s]; taken {
			continue
		}

		if sameDay {
			slotTime := time.Date(
				in.Date.Year(), in.Date.Month(), in.Date.Day(),
				t/60, t%60, 0, 0,
				in.Date.Location(),
			)
			if !slotTime.After(now) {
				continue
			}
		}

		slots = append(slots, s)
	}

	return slots, nil
}

// EndTimeFor deriva o fim do atendimento: início + duração do serviço.
func EndTimeFor(start string, durationMin int) (string, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(startMin + durationMin), nil
}
