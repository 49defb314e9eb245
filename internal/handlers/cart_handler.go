package handlers

import (
	"net/http"

	"shopsphere-be/internal/helpers"
	"shopsphere-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	service services.CartService
}

func NewCartHandler(service services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) AddProductToCart(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid product ID.")
		return
	}

	quantity, err := helpers.StringToInt(c.Param("quantity"))
	if err != nil || quantity < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid quantity.")
		return
	}

	dto, err := h.service.AddProductToCart(email.(string), productID, quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	dto, err := h.service.GetCart(email.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) DeleteProductFromCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("cartId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid cart ID.")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid product ID.")
		return
	}

	status, err := h.service.DeleteProductFromCart(cartID, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": status})
}
