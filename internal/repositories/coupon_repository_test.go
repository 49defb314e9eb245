package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestCouponRepositoryFindByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCouponRepository(db)
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "discount_percentage"}).
			AddRow(id.String(), "SUMMER30", 30)

		mock.ExpectQuery(`SELECT (.+) FROM "coupons"`).WillReturnRows(rows)

		coupon, err := repo.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER30", coupon.Name)
		assert.Equal(t, 30, coupon.DiscountPercentage)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "coupons"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "discount_percentage"}))

		_, err := repo.FindByID(uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCouponRepositoryFindAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "coupons"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	rows := sqlmock.NewRows([]string{"id", "name", "discount_percentage"}).
		AddRow(uuid.New().String(), "TEN", 10).
		AddRow(uuid.New().String(), "TWENTY", 20)
	mock.ExpectQuery(`SELECT (.+) FROM "coupons"`).WillReturnRows(rows)

	coupons, total, err := repo.FindAll(Pageable{PageNumber: 0, PageSize: 2, SortBy: "discountPercentage", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, coupons, 2)
	assert.Equal(t, "TEN", coupons[0].Name)
}

func TestCouponRepositoryFindAllRejectsHostileSortField(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "coupons"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	_, _, err := repo.FindAll(Pageable{
		PageNumber: 0,
		PageSize:   10,
		SortBy:     "name;DROP TABLE coupons;--",
		SortOrder:  "asc",
	})

	assert.ErrorIs(t, err, ErrInvalidSortField)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepositoryDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCouponRepository(db)
	id := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "coupons" SET "deleted_at"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows, err := repo.Delete(id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "coupons" SET "deleted_at"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		rows, err := repo.Delete(uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "coupons" SET "deleted_at"`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := repo.Delete(uuid.New())
		assert.Error(t, err)
	})
}
