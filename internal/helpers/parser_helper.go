package helpers

import (
	"errors"
	"strconv"

	"shopsphere-be/internal/repositories"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
)

var (
	errInvalidPageNumber = errors.New("invalid page number")
	errInvalidPageSize   = errors.New("invalid page size")
	errInvalidSortBy     = errors.New("invalid sort field")
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParsePageable reads pageNumber, pageSize, sortBy and sortOrder query
// parameters, falling back to the given sort defaults.
func ParsePageable(c *gin.Context, defaultSortBy, defaultSortOrder string) (repositories.Pageable, error) {
	pageNumber, err := StringToInt(c.DefaultQuery("pageNumber", strconv.Itoa(DefaultPageNumber)))
	if err != nil || pageNumber < 0 {
		return repositories.Pageable{}, errInvalidPageNumber
	}

	pageSize, err := StringToInt(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		return repositories.Pageable{}, errInvalidPageSize
	}

	sortBy := c.DefaultQuery("sortBy", defaultSortBy)
	if !repositories.ValidSortField(sortBy) {
		return repositories.Pageable{}, errInvalidSortBy
	}

	return repositories.Pageable{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     sortBy,
		SortOrder:  c.DefaultQuery("sortOrder", defaultSortOrder),
	}, nil
}
