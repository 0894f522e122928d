package appointment

import (
	"context"
	"time"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string

	Now func() time.Time
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		tz:   tz,
		Now:  func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	day, ok := barber.WorkSchedule.ForDate(in.Date)
	if !ok {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedStartTimes(
		ctx,
		in.BarberID,
		in.Date.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(domain.SlotInput{
		Day:             day,
		ServiceDuration: service.DurationMin,
		Booked:          booked,
		Date:            in.Date,
		Now:             uc.Now(),
	})
}
