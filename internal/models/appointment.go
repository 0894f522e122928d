package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `json:"client_id"`
	Client   Profile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint   `json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Data como "YYYY-MM-DD" e horas como "HH:MM" — a comparação de
	// sobreposição depende da ordenação lexicográfica dessas strings.
	AppointmentDate string `gorm:"size:10;index:idx_barber_day" json:"appointment_date"`
	StartTime       string `gorm:"size:5" json:"start_time"`
	EndTime         string `gorm:"size:5" json:"end_time"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentMethod string `gorm:"size:10" json:"payment_method"`
	PaymentID     string `gorm:"size:64" json:"payment_id"`

	// snapshot do preço do serviço no momento da reserva
	TotalAmount float64 `json:"total_amount"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
