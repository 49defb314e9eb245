package services

import (
	"testing"

	"shopsphere-be/internal/models"
	"shopsphere-be/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) FindByID(id uuid.UUID) (*models.Coupon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) FindAll(p repositories.Pageable) ([]models.Coupon, int64, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponRepository) Save(coupon *models.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(id uuid.UUID) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateCoupon(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("Save", mock.AnythingOfType("*models.Coupon")).Return(nil)

		svc := NewCouponService(repo)
		dto, err := svc.CreateCoupon(&models.Coupon{Name: "SUMMER30", DiscountPercentage: 30})

		require.NoError(t, err)
		assert.Equal(t, "SUMMER30", dto.Name)
		assert.Equal(t, 30, dto.DiscountPercentage)
		repo.AssertCalled(t, "Save", mock.Anything)
	})

	t.Run("BoundaryPercentages", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("Save", mock.Anything).Return(nil)
		svc := NewCouponService(repo)

		for _, pct := range []int{0, 100} {
			dto, err := svc.CreateCoupon(&models.Coupon{Name: "EDGE", DiscountPercentage: pct})
			require.NoError(t, err)
			assert.Equal(t, pct, dto.DiscountPercentage)
		}
	})

	t.Run("PercentageOutOfRange", func(t *testing.T) {
		repo := new(MockCouponRepository)
		svc := NewCouponService(repo)

		for _, pct := range []int{-1, 101, 150} {
			_, err := svc.CreateCoupon(&models.Coupon{Name: "BAD", DiscountPercentage: pct})
			var apiErr *APIError
			assert.ErrorAs(t, err, &apiErr)
		}
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("BlankName", func(t *testing.T) {
		repo := new(MockCouponRepository)
		svc := NewCouponService(repo)

		_, err := svc.CreateCoupon(&models.Coupon{Name: "   ", DiscountPercentage: 10})
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestGetCoupons(t *testing.T) {
	coupons := []models.Coupon{
		{ID: uuid.New(), Name: "A", DiscountPercentage: 10},
		{ID: uuid.New(), Name: "B", DiscountPercentage: 20},
	}

	t.Run("FirstPageOfFive", func(t *testing.T) {
		repo := new(MockCouponRepository)
		p := repositories.Pageable{PageNumber: 0, PageSize: 2, SortBy: "discountPercentage", SortOrder: "asc"}
		repo.On("FindAll", p).Return(coupons, int64(5), nil)

		svc := NewCouponService(repo)
		resp, err := svc.GetCoupons(p)

		require.NoError(t, err)
		assert.Len(t, resp.Content, 2)
		assert.Equal(t, int64(5), resp.TotalElements)
		assert.Equal(t, 3, resp.TotalPages)
		assert.False(t, resp.LastPage)
	})

	t.Run("LastPageOfFive", func(t *testing.T) {
		repo := new(MockCouponRepository)
		p := repositories.Pageable{PageNumber: 2, PageSize: 2, SortBy: "discountPercentage", SortOrder: "asc"}
		repo.On("FindAll", p).Return(coupons[:1], int64(5), nil)

		svc := NewCouponService(repo)
		resp, err := svc.GetCoupons(p)

		require.NoError(t, err)
		assert.True(t, resp.LastPage)
		assert.Equal(t, 2, resp.PageNumber)
	})
}

func TestUpdateCoupon(t *testing.T) {
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("FindByID", id).Return(&models.Coupon{ID: id, Name: "OLD", DiscountPercentage: 5}, nil)
		repo.On("Save", mock.AnythingOfType("*models.Coupon")).Return(nil)

		svc := NewCouponService(repo)
		dto, err := svc.UpdateCoupon(id, &models.Coupon{Name: "NEW", DiscountPercentage: 15})

		require.NoError(t, err)
		assert.Equal(t, "NEW", dto.Name)
		assert.Equal(t, 15, dto.DiscountPercentage)
		assert.Equal(t, id, dto.CouponID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCouponService(repo)
		_, err := svc.UpdateCoupon(id, &models.Coupon{Name: "NEW", DiscountPercentage: 15})

		var notFound *ResourceNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Coupon", notFound.Resource)
	})
}

func TestDeleteCoupon(t *testing.T) {
	id := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("Delete", id).Return(int64(1), nil)

		svc := NewCouponService(repo)
		status, err := svc.DeleteCoupon(id)

		require.NoError(t, err)
		assert.Contains(t, status, id.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockCouponRepository)
		repo.On("Delete", id).Return(int64(0), nil)

		svc := NewCouponService(repo)
		_, err := svc.DeleteCoupon(id)

		var notFound *ResourceNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
