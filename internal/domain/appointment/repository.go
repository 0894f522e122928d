package appointment

import (
	"context"

	"github.com/barbermx/appointment-api/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfileByID(
		ctx context.Context,
		id uint,
	) (*models.Profile, error)

	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	//
	// CreateAppointment roda em transação: trava os agendamentos
	// conflitantes e insere, devolvendo slot_conflict em caso de
	// sobreposição (ou violação de constraint do banco).
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBookedStartTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	// -------- Payment ledger --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
