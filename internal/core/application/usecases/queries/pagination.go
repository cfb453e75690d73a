// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read projection data straight
// from the database, returning lightweight response structs.
package queries

import (
	"math"

	"nannyadmin/internal/pkg/errs"
)

// Pagination bounds shared by every list query.
const (
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 100
)

// PaginatedResponse is one page of query results together with the total
// number of matching items and the resulting page count.
type PaginatedResponse[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int64
	TotalPages int
}

// newPaginatedResponse assembles a page, deriving TotalPages from the total
// item count. An empty result set has zero pages.
func newPaginatedResponse[T any](items []T, page, pageSize int, totalCount int64) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: int((totalCount + int64(pageSize) - 1) / int64(pageSize)),
	}
}

// validatePagination checks the shared page bounds: page is 1-based and
// pageSize is capped so a single request cannot drag the whole table.
func validatePagination(page, pageSize int) error {
	if page < MinPage {
		return errs.NewValueIsOutOfRangeError("page", page, MinPage, math.MaxInt32)
	}

	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, MinPageSize, MaxPageSize)
	}

	return nil
}

func offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
