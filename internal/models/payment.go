package models

import "time"

// Ledger desnormalizado: um registro por pagamento confirmado pelo provedor.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	Amount            float64 `json:"amount"`
	PaymentMethod     string  `gorm:"size:10" json:"payment_method"`
	PaymentProvider   string  `gorm:"size:30" json:"payment_provider"`
	PaymentProviderID string  `gorm:"size:64" json:"payment_provider_id"`

	Status string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
