package payloads

import (
	"testing"
	"time"

	"shopsphere-be/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPageMetadata(t *testing.T) {
	t.Run("FiveRowsPageSizeTwo", func(t *testing.T) {
		meta := NewPageMetadata(0, 2, 5)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, int64(5), meta.TotalElements)
		assert.False(t, meta.LastPage)

		meta = NewPageMetadata(1, 2, 5)
		assert.False(t, meta.LastPage)

		meta = NewPageMetadata(2, 2, 5)
		assert.True(t, meta.LastPage)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		meta := NewPageMetadata(1, 5, 10)
		assert.Equal(t, 2, meta.TotalPages)
		assert.True(t, meta.LastPage)
	})

	t.Run("SinglePage", func(t *testing.T) {
		meta := NewPageMetadata(0, 10, 3)
		assert.Equal(t, 1, meta.TotalPages)
		assert.True(t, meta.LastPage)
	})
}

func TestToOrderDTO(t *testing.T) {
	orderID := uuid.New()
	paymentID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	order := models.Order{
		ID:          orderID,
		Email:       "buyer@example.com",
		OrderDate:   now,
		TotalAmount: 70,
		OrderStatus: "Order Accepted!",
		Payment: &models.Payment{
			ID:            paymentID,
			OrderID:       orderID,
			PaymentMethod: "card",
		},
		Coupons: []models.Coupon{
			{ID: uuid.New(), Name: "SUMMER30", DiscountPercentage: 30},
		},
		OrderItems: []models.OrderItem{
			{
				ID:                  uuid.New(),
				OrderID:             orderID,
				ProductID:           productID,
				Product:             models.Product{ID: productID, Name: "Widget"},
				Quantity:            2,
				OrderedProductPrice: 50,
			},
		},
	}

	dto := ToOrderDTO(&order)

	assert.Equal(t, orderID, dto.OrderID)
	assert.Equal(t, "buyer@example.com", dto.Email)
	assert.Equal(t, 70.0, dto.TotalAmount)
	assert.Equal(t, "Order Accepted!", dto.OrderStatus)
	assert.Equal(t, paymentID, dto.Payment.PaymentID)
	assert.Equal(t, "card", dto.Payment.PaymentMethod)
	assert.Len(t, dto.Coupons, 1)
	assert.Equal(t, 30, dto.Coupons[0].DiscountPercentage)
	assert.Len(t, dto.OrderItems, 1)
	assert.Equal(t, "Widget", dto.OrderItems[0].Product.Name)
	assert.Equal(t, 2, dto.OrderItems[0].Quantity)
	assert.Equal(t, 50.0, dto.OrderItems[0].OrderedProductPrice)
}

func TestToOrderDTONoPaymentNoCoupons(t *testing.T) {
	order := models.Order{ID: uuid.New(), Email: "a@b.com"}
	dto := ToOrderDTO(&order)

	assert.Nil(t, dto.Payment)
	assert.Empty(t, dto.Coupons)
	assert.NotNil(t, dto.OrderItems)
}

func TestToCartDTO(t *testing.T) {
	cart := models.Cart{
		ID:         uuid.New(),
		TotalPrice: 120,
		CartItems: []models.CartItem{
			{ID: uuid.New(), Quantity: 3, ProductPrice: 40, Product: models.Product{Name: "Gizmo"}},
		},
	}

	dto := ToCartDTO(&cart)

	assert.Equal(t, 120.0, dto.TotalPrice)
	assert.Len(t, dto.CartItems, 1)
	assert.Equal(t, "Gizmo", dto.CartItems[0].Product.Name)
}
