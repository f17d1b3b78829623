package entity

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one page of a listing ordered by newest first.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps the request into the supported range.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one slice of a listing together with the total row count.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}
