package usecase

import "fmt"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

func (c PaginationConfig) normalize() PaginationConfig {
	if c.DefaultPageSize < 1 {
		c.DefaultPageSize = DefaultPageSize
	}
	if c.MaxPageSize < c.DefaultPageSize {
		c.MaxPageSize = max(MaxPageSize, c.DefaultPageSize)
	}
	return c
}

// PageRequest is 1-based. Zero values take the configured defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
	HasNext  bool
}

// resolve applies defaults and clamps the page size to the configured maximum.
func (c PaginationConfig) resolve(req PageRequest) (page, size int, err error) {
	if req.Page < 0 {
		return 0, 0, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if req.PageSize < 0 {
		return 0, 0, fmt.Errorf("%w: page_size must be >= 1", ErrInvalidInput)
	}

	page = req.Page
	if page == 0 {
		page = 1
	}
	size = req.PageSize
	if size == 0 {
		size = c.DefaultPageSize
	}
	size = min(size, c.MaxPageSize)

	return page, size, nil
}
