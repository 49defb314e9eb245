package services

import (
	"strings"

	"shopsphere-be/internal/models"
	"shopsphere-be/internal/payloads"
	"shopsphere-be/internal/repositories"
)

type ProductService interface {
	CreateProduct(product *models.Product) (*payloads.ProductDTO, error)
	GetAllProducts(p repositories.Pageable) (*payloads.ProductResponse, error)
}

type productService struct {
	products repositories.ProductRepository
}

func NewProductService(products repositories.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) CreateProduct(product *models.Product) (*payloads.ProductDTO, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, &APIError{Message: "Product name must not be blank"}
	}

	product.SpecialPrice = product.Price - product.Discount*0.01*product.Price

	if err := s.products.Save(product); err != nil {
		return nil, err
	}

	dto := payloads.ToProductDTO(product)
	return &dto, nil
}

func (s *productService) GetAllProducts(p repositories.Pageable) (*payloads.ProductResponse, error) {
	products, total, err := s.products.FindAll(p)
	if err != nil {
		return nil, err
	}

	content := make([]payloads.ProductDTO, 0, len(products))
	for i := range products {
		content = append(content, payloads.ToProductDTO(&products[i]))
	}

	return &payloads.ProductResponse{
		Content:      content,
		PageMetadata: payloads.NewPageMetadata(p.PageNumber, p.PageSize, total),
	}, nil
}
