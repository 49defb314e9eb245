package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	Email       string     `gorm:"not null;index"`
	OrderDate   time.Time  `gorm:"not null"`
	TotalAmount float64    `gorm:"not null"`
	OrderStatus string     `gorm:"not null"`
	PaymentID   *uuid.UUID `gorm:"type:uuid"`
	Payment     *Payment   `gorm:"foreignKey:PaymentID"`
	Coupons     []Coupon   `gorm:"many2many:order_coupons;"`
	OrderItems  []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// OrderItem is a snapshot of a cart item at placement time. Quantity and
// price are copied, never re-derived from the cart.
type OrderItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	OrderID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Product             Product
	Quantity            int     `gorm:"not null"`
	Discount            float64 `gorm:"not null;default:0"`
	OrderedProductPrice float64 `gorm:"not null"`
	CreatedAt           time.Time
}
