package appointment

import (
	"context"
	"time"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		barberID,
		date.Format("2006-01-02"),
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
