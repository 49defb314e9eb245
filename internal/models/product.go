package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	Name         string    `gorm:"not null"`
	Description  string    `gorm:"not null"`
	Quantity     int       `gorm:"not null"`
	Price        float64   `gorm:"not null"`
	Discount     float64   `gorm:"not null;default:0"`
	SpecialPrice float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
