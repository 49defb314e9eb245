package repositories

import (
	"shopsphere-be/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByEmailAndID(email string, orderID uuid.UUID) (*models.Order, error)
	FindAllByEmail(email string) ([]models.Order, error)
	FindAllByCoupon(couponID uuid.UUID, p Pageable) ([]models.Order, int64, error)
	FindAll(p Pageable) ([]models.Order, int64, error)
	Save(order *models.Order) error
	CreateOrderTx(order *models.Order, payment *models.Payment, items []models.OrderItem, cart *models.Cart) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByEmailAndID(email string, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Payment").
		Preload("Coupons").
		Preload("OrderItems.Product").
		Where("email = ? AND id = ?", email, orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAllByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Payment").
		Preload("OrderItems.Product").
		Where("email = ?", email).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindAllByCoupon(couponID uuid.UUID, p Pageable) ([]models.Order, int64, error) {
	base := r.db.Model(&models.Order{}).
		Joins("JOIN order_coupons ON order_coupons.order_id = orders.id").
		Where("order_coupons.coupon_id = ?", couponID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.db.
		Preload("Payment").
		Preload("OrderItems.Product").
		Joins("JOIN order_coupons ON order_coupons.order_id = orders.id").
		Where("order_coupons.coupon_id = ?", couponID).
		Scopes(paginate(p)).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) FindAll(p Pageable) ([]models.Order, int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.db.
		Preload("Payment").
		Preload("Coupons").
		Preload("OrderItems.Product").
		Scopes(paginate(p)).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) Save(order *models.Order) error {
	return r.db.Omit("Coupons.*").Save(order).Error
}

// CreateOrderTx persists a placed order and all of its side effects in one
// transaction: the order, its payment (two writes, since the payment row
// needs the generated order id first), the item snapshots, the stock
// decrements and the cart cleanup. Stock and cart rows are read-then-written
// without row locking, so two simultaneous placements against the same cart
// or product can still race, as in the original flow.
func (r *orderRepository) CreateOrderTx(order *models.Order, payment *models.Payment, items []models.OrderItem, cart *models.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Coupons.*").Create(order).Error; err != nil {
			return err
		}

		payment.OrderID = order.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		order.PaymentID = &payment.ID
		if err := tx.Model(order).Update("payment_id", payment.ID).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Omit("Product").Create(&items).Error; err != nil {
			return err
		}

		for _, item := range cart.CartItems {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error
			if err != nil {
				return err
			}

			err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, item.ProductID).
				Delete(&models.CartItem{}).Error
			if err != nil {
				return err
			}
		}

		return tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("total_price", 0).Error
	})
}
