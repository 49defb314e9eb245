package services

import (
	"fmt"
	"strings"

	"shopsphere-be/internal/logger"
	"shopsphere-be/internal/models"
	"shopsphere-be/internal/payloads"
	"shopsphere-be/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CouponService interface {
	CreateCoupon(coupon *models.Coupon) (*payloads.CouponDTO, error)
	GetCoupons(p repositories.Pageable) (*payloads.CouponResponse, error)
	UpdateCoupon(couponID uuid.UUID, coupon *models.Coupon) (*payloads.CouponDTO, error)
	DeleteCoupon(couponID uuid.UUID) (string, error)
}

type couponService struct {
	coupons repositories.CouponRepository
}

func NewCouponService(coupons repositories.CouponRepository) CouponService {
	return &couponService{coupons: coupons}
}

func validateCoupon(coupon *models.Coupon) error {
	if strings.TrimSpace(coupon.Name) == "" {
		return &APIError{Message: "Coupon name must not be blank"}
	}
	if coupon.DiscountPercentage < 0 || coupon.DiscountPercentage > 100 {
		return &APIError{Message: "Discount percentage must be between 0 and 100"}
	}
	return nil
}

func (s *couponService) CreateCoupon(coupon *models.Coupon) (*payloads.CouponDTO, error) {
	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	if err := s.coupons.Save(coupon); err != nil {
		return nil, err
	}

	logger.L().Info("coupon created",
		zap.String("coupon_id", coupon.ID.String()),
		zap.String("name", coupon.Name),
		zap.Int("discount_percentage", coupon.DiscountPercentage))

	dto := payloads.ToCouponDTO(coupon)
	return &dto, nil
}

func (s *couponService) GetCoupons(p repositories.Pageable) (*payloads.CouponResponse, error) {
	coupons, total, err := s.coupons.FindAll(p)
	if err != nil {
		return nil, err
	}

	content := make([]payloads.CouponDTO, 0, len(coupons))
	for i := range coupons {
		content = append(content, payloads.ToCouponDTO(&coupons[i]))
	}

	return &payloads.CouponResponse{
		Content:      content,
		PageMetadata: payloads.NewPageMetadata(p.PageNumber, p.PageSize, total),
	}, nil
}

func (s *couponService) UpdateCoupon(couponID uuid.UUID, coupon *models.Coupon) (*payloads.CouponDTO, error) {
	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	existing, err := s.coupons.FindByID(couponID)
	if err != nil {
		return nil, notFoundOr(err, "Coupon", "couponId", couponID.String())
	}

	existing.Name = coupon.Name
	existing.DiscountPercentage = coupon.DiscountPercentage

	if err := s.coupons.Save(existing); err != nil {
		return nil, err
	}

	dto := payloads.ToCouponDTO(existing)
	return &dto, nil
}

func (s *couponService) DeleteCoupon(couponID uuid.UUID) (string, error) {
	rows, err := s.coupons.Delete(couponID)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", &ResourceNotFoundError{Resource: "Coupon", Field: "couponId", Value: couponID.String()}
	}

	logger.L().Info("coupon deleted", zap.String("coupon_id", couponID.String()))

	return fmt.Sprintf("Coupon with couponId: %s deleted successfully", couponID), nil
}
