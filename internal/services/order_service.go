package services

import (
	"fmt"
	"time"

	"shopsphere-be/internal/logger"
	"shopsphere-be/internal/models"
	"shopsphere-be/internal/payloads"
	"shopsphere-be/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderStatusAccepted = "Order Accepted!"

type OrderService interface {
	PlaceOrder(email string, cartID uuid.UUID, couponID *uuid.UUID, paymentMethod string) (*payloads.OrderDTO, error)
	GetOrder(email string, orderID uuid.UUID) (*payloads.OrderDTO, error)
	GetOrdersByUser(email string) ([]payloads.OrderDTO, error)
	GetOrdersByCoupon(couponID uuid.UUID, p repositories.Pageable) (*payloads.OrderResponse, error)
	GetAllOrders(p repositories.Pageable) (*payloads.OrderResponse, error)
	UpdateOrderStatus(email string, orderID uuid.UUID, status string) (*payloads.OrderDTO, error)
}

type orderService struct {
	orders  repositories.OrderRepository
	carts   repositories.CartRepository
	coupons repositories.CouponRepository
}

func NewOrderService(orders repositories.OrderRepository, carts repositories.CartRepository, coupons repositories.CouponRepository) OrderService {
	return &orderService{orders: orders, carts: carts, coupons: coupons}
}

// PlaceOrder folds the cart identified by (email, cartID) into a new order,
// applying the optional coupon's percentage discount to the cart total. The
// order, its payment, the item snapshots, the stock decrements and the cart
// cleanup are persisted atomically.
func (s *orderService) PlaceOrder(email string, cartID uuid.UUID, couponID *uuid.UUID, paymentMethod string) (*payloads.OrderDTO, error) {
	cart, err := s.carts.FindByEmailAndID(email, cartID)
	if err != nil {
		return nil, notFoundOr(err, "Cart", "cartId", cartID.String())
	}
	if len(cart.CartItems) == 0 {
		return nil, &APIError{Message: "Cart is empty"}
	}

	order := &models.Order{
		Email:       email,
		OrderDate:   time.Now(),
		OrderStatus: orderStatusAccepted,
	}

	totalAmount := cart.TotalPrice
	if couponID != nil {
		coupon, err := s.coupons.FindByID(*couponID)
		if err != nil {
			return nil, notFoundOr(err, "Coupon", "couponId", couponID.String())
		}

		discount := float64(coupon.DiscountPercentage) / 100.0 * totalAmount
		totalAmount -= discount
		if totalAmount < 0 {
			totalAmount = 0
		}
		order.Coupons = append(order.Coupons, *coupon)
	}
	order.TotalAmount = totalAmount

	payment := &models.Payment{PaymentMethod: paymentMethod}

	items := make([]models.OrderItem, 0, len(cart.CartItems))
	for _, cartItem := range cart.CartItems {
		items = append(items, models.OrderItem{
			ProductID:           cartItem.ProductID,
			Product:             cartItem.Product,
			Quantity:            cartItem.Quantity,
			Discount:            cartItem.Discount,
			OrderedProductPrice: cartItem.ProductPrice,
		})
	}

	if err := s.orders.CreateOrderTx(order, payment, items, cart); err != nil {
		return nil, err
	}

	order.Payment = payment
	order.OrderItems = items

	logger.L().Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("email", email),
		zap.Float64("total_amount", totalAmount),
		zap.Int("items", len(items)))

	dto := payloads.ToOrderDTO(order)
	return &dto, nil
}

func (s *orderService) GetOrder(email string, orderID uuid.UUID) (*payloads.OrderDTO, error) {
	order, err := s.orders.FindByEmailAndID(email, orderID)
	if err != nil {
		return nil, notFoundOr(err, "Order", "orderId", orderID.String())
	}

	dto := payloads.ToOrderDTO(order)
	return &dto, nil
}

func (s *orderService) GetOrdersByUser(email string) ([]payloads.OrderDTO, error) {
	orders, err := s.orders.FindAllByEmail(email)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &APIError{Message: fmt.Sprintf("No orders placed yet by the user with email: %s", email)}
	}

	dtos := make([]payloads.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, payloads.ToOrderDTO(&orders[i]))
	}
	return dtos, nil
}

func (s *orderService) GetOrdersByCoupon(couponID uuid.UUID, p repositories.Pageable) (*payloads.OrderResponse, error) {
	coupon, err := s.coupons.FindByID(couponID)
	if err != nil {
		return nil, notFoundOr(err, "Coupon", "couponId", couponID.String())
	}

	orders, total, err := s.orders.FindAllByCoupon(coupon.ID, p)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &APIError{Message: fmt.Sprintf("No orders found for the coupon: %s", coupon.Name)}
	}

	content := make([]payloads.OrderDTO, 0, len(orders))
	for i := range orders {
		content = append(content, payloads.ToOrderDTO(&orders[i]))
	}

	return &payloads.OrderResponse{
		Content:      content,
		PageMetadata: payloads.NewPageMetadata(p.PageNumber, p.PageSize, total),
	}, nil
}

func (s *orderService) GetAllOrders(p repositories.Pageable) (*payloads.OrderResponse, error) {
	orders, total, err := s.orders.FindAll(p)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &APIError{Message: "No orders placed yet by the users"}
	}

	content := make([]payloads.OrderDTO, 0, len(orders))
	for i := range orders {
		content = append(content, payloads.ToOrderDTO(&orders[i]))
	}

	return &payloads.OrderResponse{
		Content:      content,
		PageMetadata: payloads.NewPageMetadata(p.PageNumber, p.PageSize, total),
	}, nil
}

func (s *orderService) UpdateOrderStatus(email string, orderID uuid.UUID, status string) (*payloads.OrderDTO, error) {
	order, err := s.orders.FindByEmailAndID(email, orderID)
	if err != nil {
		return nil, notFoundOr(err, "Order", "orderId", orderID.String())
	}

	// any status string is accepted, there is no transition validation
	order.OrderStatus = status
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	logger.L().Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", status))

	dto := payloads.ToOrderDTO(order)
	return &dto, nil
}
