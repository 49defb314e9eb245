package repositories

import (
	"shopsphere-be/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepository interface {
	FindByID(id uuid.UUID) (*models.Coupon, error)
	FindAll(p Pageable) ([]models.Coupon, int64, error)
	Save(coupon *models.Coupon) error
	Delete(id uuid.UUID) (int64, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) FindByID(id uuid.UUID) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindAll(p Pageable) ([]models.Coupon, int64, error) {
	var total int64
	if err := r.db.Model(&models.Coupon{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []models.Coupon
	if err := r.db.Scopes(paginate(p)).Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *couponRepository) Save(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

func (r *couponRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Coupon{})
	return result.RowsAffected, result.Error
}
