package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	User       *User     `gorm:"foreignKey:UserID"`
	TotalPrice float64   `gorm:"not null;default:0"`
	CartItems  []CartItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

type CartItem struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	CartID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Product      Product
	Quantity     int     `gorm:"not null"`
	Discount     float64 `gorm:"not null;default:0"`
	ProductPrice float64 `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
