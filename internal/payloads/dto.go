package payloads

import (
	"time"

	"github.com/google/uuid"
)

type CouponDTO struct {
	CouponID           uuid.UUID `json:"coupon_id"`
	Name               string    `json:"name"`
	DiscountPercentage int       `json:"discount_percentage"`
}

type PaymentDTO struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	PaymentMethod string    `json:"payment_method"`
}

type ProductDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Discount     float64   `json:"discount"`
	SpecialPrice float64   `json:"special_price"`
}

type OrderItemDTO struct {
	OrderItemID         uuid.UUID  `json:"order_item_id"`
	Product             ProductDTO `json:"product"`
	Quantity            int        `json:"quantity"`
	Discount            float64    `json:"discount"`
	OrderedProductPrice float64    `json:"ordered_product_price"`
}

type OrderDTO struct {
	OrderID     uuid.UUID      `json:"order_id"`
	Email       string         `json:"email"`
	OrderDate   time.Time      `json:"order_date"`
	TotalAmount float64        `json:"total_amount"`
	OrderStatus string         `json:"order_status"`
	Payment     *PaymentDTO    `json:"payment,omitempty"`
	Coupons     []CouponDTO    `json:"coupons,omitempty"`
	OrderItems  []OrderItemDTO `json:"order_items"`
}

type CartItemDTO struct {
	CartItemID   uuid.UUID  `json:"cart_item_id"`
	Product      ProductDTO `json:"product"`
	Quantity     int        `json:"quantity"`
	Discount     float64    `json:"discount"`
	ProductPrice float64    `json:"product_price"`
}

type CartDTO struct {
	CartID     uuid.UUID     `json:"cart_id"`
	TotalPrice float64       `json:"total_price"`
	CartItems  []CartItemDTO `json:"cart_items"`
}

// PageMetadata is shared by every paginated response.
type PageMetadata struct {
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	LastPage      bool  `json:"last_page"`
}

// NewPageMetadata computes paging info for a zero-based page over total rows.
func NewPageMetadata(pageNumber, pageSize int, totalElements int64) PageMetadata {
	totalPages := int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	return PageMetadata{
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		LastPage:      pageNumber >= totalPages-1,
	}
}

type CouponResponse struct {
	Content []CouponDTO `json:"content"`
	PageMetadata
}

type OrderResponse struct {
	Content []OrderDTO `json:"content"`
	PageMetadata
}

type ProductResponse struct {
	Content []ProductDTO `json:"content"`
	PageMetadata
}
