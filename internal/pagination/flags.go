package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort flag values.
const (
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "name", "id:desc", "email:asc"
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// ValidatePage rejects page numbers below 1.
func ValidatePage(page int) error {
	if page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return nil
}
