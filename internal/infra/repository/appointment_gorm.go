package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfileByID(
	ctx context.Context,
	id uint,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// trava os conflitantes e re-checa dentro da transação;
		// "HH:MM" com zero à esquerda ordena lexicograficamente
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND appointment_date = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
				ap.BarberID, ap.AppointmentDate, ap.EndTime, ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		// corrida perdida contra o índice único parcial
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("slot_conflict")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	// Client e Service preenchem o fallback da preferência de checkout
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedStartTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var starts []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND status <> 'cancelled'",
			barberID, date,
		).
		Order("start_time ASC").
		Pluck("start_time", &starts).Error; err != nil {
		return nil, err
	}

	return starts, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND appointment_date = ?",
			barberID, date,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND appointment_date >= ? AND appointment_date < ?",
			barberID, fromDate, toDate,
		).
		Order("appointment_date ASC, start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber.Profile").
		Where("client_id = ?", clientID).
		Order("appointment_date DESC, start_time DESC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Payment ledger
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
