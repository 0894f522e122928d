package appointment

import (
	"context"
	"time"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/dto"
	"github.com/barbermx/appointment-api/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	tz string,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			StartTime:       ap.StartTime,
			EndTime:         ap.EndTime,
			Status:          ap.Status,
			PaymentStatus:   ap.PaymentStatus,
			PaymentMethod:   ap.PaymentMethod,
			ClientName:      ap.Client.FullName,
			ServiceName:     ap.Service.Name,
			TotalAmount:     ap.TotalAmount,
		})
	}

	return out, nil
}
