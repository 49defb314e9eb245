package services

import (
	"errors"
	"fmt"

	"shopsphere-be/internal/models"
	"shopsphere-be/internal/payloads"
	"shopsphere-be/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService interface {
	AddProductToCart(email string, productID uuid.UUID, quantity int) (*payloads.CartDTO, error)
	GetCart(email string) (*payloads.CartDTO, error)
	DeleteProductFromCart(cartID, productID uuid.UUID) (string, error)
}

type cartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
	users    repositories.UserRepository
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, users repositories.UserRepository) CartService {
	return &cartService{carts: carts, products: products, users: users}
}

func (s *cartService) AddProductToCart(email string, productID uuid.UUID, quantity int) (*payloads.CartDTO, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, notFoundOr(err, "User", "email", email)
	}

	cart, err := s.carts.FindByUserID(user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = &models.Cart{UserID: user.ID}
		if err := s.carts.Create(cart); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, notFoundOr(err, "Product", "productId", productID.String())
	}

	if product.Quantity == 0 {
		return nil, &APIError{Message: fmt.Sprintf("%s is not available", product.Name)}
	}
	if product.Quantity < quantity {
		return nil, &APIError{Message: fmt.Sprintf(
			"Please, make an order of the %s less than or equal to the quantity %d", product.Name, product.Quantity)}
	}

	if _, err := s.carts.FindItem(cart.ID, productID); err == nil {
		return nil, &APIError{Message: fmt.Sprintf("Product %s already exists in the cart", product.Name)}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &models.CartItem{
		CartID:       cart.ID,
		ProductID:    product.ID,
		Quantity:     quantity,
		Discount:     product.Discount,
		ProductPrice: product.SpecialPrice,
	}
	if err := s.carts.AddItem(item); err != nil {
		return nil, err
	}

	newTotal := cart.TotalPrice + product.SpecialPrice*float64(quantity)
	if err := s.carts.UpdateTotalPrice(cart.ID, newTotal); err != nil {
		return nil, err
	}

	updated, err := s.carts.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	dto := payloads.ToCartDTO(updated)
	return &dto, nil
}

func (s *cartService) GetCart(email string) (*payloads.CartDTO, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, notFoundOr(err, "User", "email", email)
	}

	cart, err := s.carts.FindByUserID(user.ID)
	if err != nil {
		return nil, notFoundOr(err, "Cart", "email", email)
	}

	dto := payloads.ToCartDTO(cart)
	return &dto, nil
}

func (s *cartService) DeleteProductFromCart(cartID, productID uuid.UUID) (string, error) {
	cart, err := s.carts.FindByID(cartID)
	if err != nil {
		return "", notFoundOr(err, "Cart", "cartId", cartID.String())
	}

	item, err := s.carts.FindItem(cartID, productID)
	if err != nil {
		return "", notFoundOr(err, "Product", "productId", productID.String())
	}

	newTotal := cart.TotalPrice - item.ProductPrice*float64(item.Quantity)
	if _, err := s.carts.DeleteItem(cartID, productID); err != nil {
		return "", err
	}
	if err := s.carts.UpdateTotalPrice(cartID, newTotal); err != nil {
		return "", err
	}

	return fmt.Sprintf("Product %s removed from the cart", item.Product.Name), nil
}
