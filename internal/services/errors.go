package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ResourceNotFoundError reports a failed lookup of an entity by key.
type ResourceNotFoundError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %s", e.Resource, e.Field, e.Value)
}

// APIError is a business-rule violation surfaced to the caller as a bad
// request.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// notFoundOr translates a gorm record-not-found into a typed lookup error
// and passes everything else through unchanged.
func notFoundOr(err error, resource, field, value string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ResourceNotFoundError{Resource: resource, Field: field, Value: value}
	}
	return err
}
