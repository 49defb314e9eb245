package handlers

import (
	"net/http"

	"shopsphere-be/internal/helpers"
	"shopsphere-be/internal/models"
	"shopsphere-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponRequest struct {
	Name               string `json:"name" binding:"required"`
	DiscountPercentage *int   `json:"discount_percentage" binding:"required,gte=0,lte=100"`
}

type CouponHandler struct {
	service services.CouponService
}

func NewCouponHandler(service services.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	coupon := models.Coupon{
		Name:               req.Name,
		DiscountPercentage: *req.DiscountPercentage,
	}

	dto, err := h.service.CreateCoupon(&coupon)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

func (h *CouponHandler) GetCoupons(c *gin.Context) {
	pageable, err := helpers.ParsePageable(c, "discountPercentage", "asc")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.GetCoupons(pageable)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid coupon ID.")
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	coupon := models.Coupon{
		Name:               req.Name,
		DiscountPercentage: *req.DiscountPercentage,
	}

	dto, err := h.service.UpdateCoupon(couponID, &coupon)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid coupon ID.")
		return
	}

	status, err := h.service.DeleteCoupon(couponID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": status})
}
