package models

import (
	"time"
)

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfileID uint    `gorm:"uniqueIndex" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	WorkSchedule WorkSchedule `gorm:"type:jsonb" json:"work_schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
