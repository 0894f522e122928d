package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
