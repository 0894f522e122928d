package dto

type AppointmentListDTO struct {
	ID              uint    `json:"id"`
	AppointmentDate string  `json:"appointment_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method"`
	ClientName      string  `json:"client_name"`
	ServiceName     string  `json:"service_name"`
	TotalAmount     float64 `json:"total_amount"`
}
