package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePageableDefaults(t *testing.T) {
	c := contextWithQuery("")

	p, err := ParsePageable(c, "discountPercentage", "asc")
	require.NoError(t, err)

	assert.Equal(t, 0, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, "discountPercentage", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestParsePageableExplicit(t *testing.T) {
	c := contextWithQuery("pageNumber=3&pageSize=25&sortBy=orderDate&sortOrder=desc")

	p, err := ParsePageable(c, "discountPercentage", "asc")
	require.NoError(t, err)

	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, "orderDate", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParsePageableInvalid(t *testing.T) {
	cases := []string{
		"pageNumber=abc",
		"pageNumber=-1",
		"pageSize=0",
		"pageSize=notanumber",
		"sortBy=name%3BDROP%20TABLE%20coupons%3B--",
		"sortBy=name%20DESC%2C%20email",
		"sortBy=name%27",
	}

	for _, query := range cases {
		_, err := ParsePageable(contextWithQuery(query), "name", "asc")
		assert.Error(t, err, query)
	}
}

func TestOrderSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	sig := OrderSignature("order-123", "buyer@example.com")
	assert.NotEmpty(t, sig)
	assert.True(t, ValidOrderSignature("order-123", "buyer@example.com", sig))
	assert.False(t, ValidOrderSignature("order-456", "buyer@example.com", sig))
	assert.False(t, ValidOrderSignature("order-123", "other@example.com", sig))
	assert.False(t, ValidOrderSignature("order-123", "buyer@example.com", "deadbeef"))
}
