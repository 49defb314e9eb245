package repositories

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// ErrInvalidSortField rejects sort fields that are not plain identifiers.
var ErrInvalidSortField = errors.New("invalid sort field")

var sortFieldPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ValidSortField reports whether field is a bare identifier that columnName
// can safely turn into an ORDER BY column. Anything else must never reach
// the query builder.
func ValidSortField(field string) bool {
	return sortFieldPattern.MatchString(field)
}

// Pageable carries the paging and sorting parameters of a list request.
// PageNumber is zero-based.
type Pageable struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortOrder  string
}

func (p Pageable) offset() int {
	return p.PageNumber * p.PageSize
}

// columnName converts a lowerCamelCase sort field (discountPercentage)
// into its snake_case column (discount_percentage).
func columnName(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// paginate applies ordering, offset and limit as a gorm scope. The sort is
// ascending only when the order parameter equals "asc" case-insensitively.
func paginate(p Pageable) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !ValidSortField(p.SortBy) {
			_ = db.AddError(ErrInvalidSortField)
			return db
		}

		direction := "DESC"
		if strings.EqualFold(p.SortOrder, "asc") {
			direction = "ASC"
		}
		return db.Order(columnName(p.SortBy) + " " + direction).
			Offset(p.offset()).
			Limit(p.PageSize)
	}
}
