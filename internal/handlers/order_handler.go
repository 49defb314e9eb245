package handlers

import (
	"fmt"
	"net/http"

	"shopsphere-be/internal/helpers"
	"shopsphere-be/internal/payment"
	"shopsphere-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type OrderHandler struct {
	service services.OrderService
	gateway payment.Gateway
}

func NewOrderHandler(service services.OrderService, gateway payment.Gateway) *OrderHandler {
	return &OrderHandler{service: service, gateway: gateway}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	email := c.Param("emailId")

	cartID, err := uuid.Parse(c.Param("cartId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid cart ID.")
		return
	}

	var couponID *uuid.UUID
	if raw := c.Query("couponId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid coupon ID.")
			return
		}
		couponID = &parsed
	}

	dto, err := h.service.PlaceOrder(email, cartID, couponID, c.Param("paymentMethod"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	email := c.Param("emailId")

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID.")
		return
	}

	dto, err := h.service.GetOrder(email, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *OrderHandler) GetOrdersByUser(c *gin.Context) {
	dtos, err := h.service.GetOrdersByUser(c.Param("emailId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos)
}

func (h *OrderHandler) GetOrdersByCoupon(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid coupon ID.")
		return
	}

	pageable, err := helpers.ParsePageable(c, "orderDate", "desc")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.GetOrdersByCoupon(couponID, pageable)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	pageable, err := helpers.ParsePageable(c, "orderDate", "desc")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.GetAllOrders(pageable)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	email := c.Param("emailId")

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID.")
		return
	}

	status := c.Param("orderStatus")
	if status == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Order status must not be empty.")
		return
	}

	dto, err := h.service.UpdateOrderStatus(email, orderID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// GenerateOrderQR renders a signed receipt QR for one of the caller's own
// orders.
func (h *OrderHandler) GenerateOrderQR(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID.")
		return
	}

	dto, err := h.service.GetOrder(email.(string), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	signature := helpers.OrderSignature(dto.OrderID.String(), dto.Email)
	qrData := fmt.Sprintf("order:%s;email:%s;signature:%s", dto.OrderID, dto.Email, signature)

	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

// CreatePaymentLink creates a hosted payment invoice for a placed order and
// returns its URL.
func (h *OrderHandler) CreatePaymentLink(c *gin.Context) {
	email := c.Param("emailId")

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID.")
		return
	}

	dto, err := h.service.GetOrder(email, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	paymentURL, err := h.gateway.CreateInvoice(c.Request.Context(), dto.OrderID.String(), dto.Email, dto.TotalAmount)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadGateway, "Payment link generation failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": paymentURL})
}
