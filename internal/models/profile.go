package models

import "time"

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
