package payloads

import (
	"shopsphere-be/internal/models"
)

func ToCouponDTO(c *models.Coupon) CouponDTO {
	return CouponDTO{
		CouponID:           c.ID,
		Name:               c.Name,
		DiscountPercentage: c.DiscountPercentage,
	}
}

func ToPaymentDTO(p *models.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		PaymentID:     p.ID,
		PaymentMethod: p.PaymentMethod,
	}
}

func ToProductDTO(p *models.Product) ProductDTO {
	return ProductDTO{
		ProductID:    p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}

func ToOrderItemDTO(i *models.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		OrderItemID:         i.ID,
		Product:             ToProductDTO(&i.Product),
		Quantity:            i.Quantity,
		Discount:            i.Discount,
		OrderedProductPrice: i.OrderedProductPrice,
	}
}

func ToOrderDTO(o *models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.OrderItems))
	for i := range o.OrderItems {
		items = append(items, ToOrderItemDTO(&o.OrderItems[i]))
	}

	var coupons []CouponDTO
	for i := range o.Coupons {
		coupons = append(coupons, ToCouponDTO(&o.Coupons[i]))
	}

	return OrderDTO{
		OrderID:     o.ID,
		Email:       o.Email,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		OrderStatus: o.OrderStatus,
		Payment:     ToPaymentDTO(o.Payment),
		Coupons:     coupons,
		OrderItems:  items,
	}
}

func ToCartItemDTO(i *models.CartItem) CartItemDTO {
	return CartItemDTO{
		CartItemID:   i.ID,
		Product:      ToProductDTO(&i.Product),
		Quantity:     i.Quantity,
		Discount:     i.Discount,
		ProductPrice: i.ProductPrice,
	}
}

func ToCartDTO(c *models.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(c.CartItems))
	for i := range c.CartItems {
		items = append(items, ToCartItemDTO(&c.CartItems[i]))
	}
	return CartDTO{
		CartID:     c.ID,
		TotalPrice: c.TotalPrice,
		CartItems:  items,
	}
}
