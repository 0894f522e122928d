package appointment

import (
	"context"
	"errors"

	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo é um repositório em memória para os testes de use case.
// Reproduz a regra de conflito do banco: mesma barbeiro+data com
// sobreposição entre não cancelados.
type fakeRepo struct {
	profiles map[uint]*models.Profile
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service

	appointments map[uint]*models.Appointment
	payments     []*models.Payment

	nextID uint

	// força um erro no create pra simular corrida perdida
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles:     map[uint]*models.Profile{},
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) GetProfileByID(_ context.Context, id uint) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}

	for _, other := range f.appointments {
		if other.BarberID != ap.BarberID ||
			other.AppointmentDate != ap.AppointmentDate ||
			other.Status == "cancelled" {
			continue
		}
		if other.StartTime < ap.EndTime && other.EndTime > ap.StartTime {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, id, barberID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.BarberID != barberID {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) GetAppointmentForClient(_ context.Context, id, clientID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.ClientID != clientID {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errNotFound
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) ListBookedStartTimes(_ context.Context, barberID uint, date string) ([]string, error) {
	out := []string{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.AppointmentDate == date && ap.Status != "cancelled" {
			out = append(out, ap.StartTime)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.AppointmentDate == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, fromDate, toDate string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.AppointmentDate >= fromDate && ap.AppointmentDate < toDate {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}
