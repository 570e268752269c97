package domain

import (
	"fmt"
	"math"
)

const (
	// DefaultPageSize is used when a page is requested without size.
	DefaultPageSize = 10
	// MaxPageSize is the largest number of items returned in a single page.
	MaxPageSize = 1000
	// MaxPageNumber makes sure that the offset of any valid page fits an int64.
	MaxPageNumber = math.MaxInt64/MaxPageSize + 1
)

type Page interface {
	GetNumber() int64
	GetSize() int64
}

type page struct {
	number int64
	size   int64
}

// NewPage returns a page with defaults applied to non positive values.
// Out of range values are not clamped, use ValidatePage to reject them.
func NewPage(pageNumber, pageSize int64) Page {
	pNumber := int64(1)
	if pageNumber > 0 {
		pNumber = pageNumber
	}

	pSize := int64(DefaultPageSize)
	if pageSize > 0 {
		pSize = pageSize
	}

	return page{
		number: pNumber,
		size:   pSize,
	}
}

func (p page) GetNumber() int64 {
	return p.number
}

func (p page) GetSize() int64 {
	return p.size
}

// ValidatePage makes sure the page number and size are within bounds.
func ValidatePage(p Page) error {
	if p.GetSize() < 1 || p.GetSize() > MaxPageSize {
		return fmt.Errorf(
			"%w: size must be in range [1, %d]", ErrInvalidPage, MaxPageSize,
		)
	}
	if p.GetNumber() < 1 || p.GetNumber() > MaxPageNumber {
		return fmt.Errorf(
			"%w: number must be in range [1, %d]", ErrInvalidPage, MaxPageNumber,
		)
	}
	return nil
}

// PageOffset returns the number of items preceding the page and its size.
func PageOffset(p Page) (offset, limit int64, err error) {
	if err := ValidatePage(p); err != nil {
		return 0, 0, err
	}
	return (p.GetNumber() - 1) * p.GetSize(), p.GetSize(), nil
}
