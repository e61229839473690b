package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// ErrValidation marks malformed input. Match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is the parent of every not-found error below.
	ErrNotFound         = errors.New("not found")
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// ErrDataSource marks an unreachable or malformed catalog store.
	ErrDataSource       = errors.New("data source unavailable")
	ErrCatalogNotLoaded = fmt.Errorf("catalog not loaded: %w", ErrDataSource)

	// Record errors, reported when a record is rejected at load time
	ErrEmptyID          = errors.New("product id cannot be empty")
	ErrEmptyTitle       = errors.New("product title cannot be empty")
	ErrInvalidCategory  = errors.New("product category cannot be empty")
	ErrEmptyBrand       = errors.New("product brand cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrInvalidCondition = errors.New("product condition is not recognised")
	ErrInvalidEcoRating = errors.New("product eco rating must be between 1 and 5")
	ErrNegativeStock    = errors.New("product stock cannot be negative")
	ErrMissingCreatedAt = errors.New("product created_at is required")
	ErrEmptyCategoryID  = errors.New("category id cannot be empty")
	ErrEmptySlug        = errors.New("category slug cannot be empty")
	ErrDuplicateID      = errors.New("duplicate id")
)

// ValidationError describes a rejected input value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DataSourceError wraps a failure of the underlying catalog store.
type DataSourceError struct {
	Source string
	Err    error
}

// NewDataSourceError creates a DataSourceError.
func NewDataSourceError(source string, err error) *DataSourceError {
	return &DataSourceError{Source: source, Err: err}
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataSource) match any DataSourceError.
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}
