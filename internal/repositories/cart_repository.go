package repositories

import (
	"shopsphere-be/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByID(cartID uuid.UUID) (*models.Cart, error)
	FindByEmailAndID(email string, cartID uuid.UUID) (*models.Cart, error)
	FindByUserID(userID uuid.UUID) (*models.Cart, error)
	Create(cart *models.Cart) error
	AddItem(item *models.CartItem) error
	FindItem(cartID, productID uuid.UUID) (*models.CartItem, error)
	DeleteItem(cartID, productID uuid.UUID) (int64, error)
	UpdateTotalPrice(cartID uuid.UUID, total float64) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByID(cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("CartItems.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByEmailAndID(email string, cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Joins("JOIN users ON users.id = carts.user_id").
		Where("users.email = ? AND carts.id = ?", email, cartID).
		Preload("CartItems.Product").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByUserID(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Where("user_id = ?", userID).
		Preload("CartItems.Product").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepository) AddItem(item *models.CartItem) error {
	return r.db.Omit("Product").Create(item).Error
}

func (r *cartRepository) FindItem(cartID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) DeleteItem(cartID, productID uuid.UUID) (int64, error) {
	result := r.db.
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *cartRepository) UpdateTotalPrice(cartID uuid.UUID, total float64) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("total_price", total).Error
}
