package handlers

import (
	"net/http"

	"shopsphere-be/internal/helpers"
	"shopsphere-be/internal/models"
	"shopsphere-be/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Discount    float64  `json:"discount" binding:"gte=0,lte=100"`
}

type ProductHandler struct {
	service services.ProductService
}

func NewProductHandler(service services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Discount:    req.Discount,
	}

	dto, err := h.service.CreateProduct(&product)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	pageable, err := helpers.ParsePageable(c, "name", "asc")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.GetAllProducts(pageable)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
