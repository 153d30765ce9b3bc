package pagination

import "math"

// MaxPerPage bounds the page size regardless of what the caller asks for.
const MaxPerPage = 100

// PaginationParams represents offset/limit input parameters. Different
// endpoints carry different default page sizes (50 for the admin vehicle
// listing, 8 for the public landing grid), so the default is an argument
// rather than a constant.
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"limit" json:"limit"`
}

// NewParams returns params clamped to valid ranges, falling back to
// defaultPerPage when no page size was supplied.
func NewParams(page, perPage, defaultPerPage int) *PaginationParams {
	p := &PaginationParams{Page: page, PerPage: perPage}
	p.Validate(defaultPerPage)
	return p
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate(defaultPerPage int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// Offset calculates the offset for SQL queries
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageResult holds one page of results with the total row count alongside,
// the shape every listing endpoint returns.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult assembles a page response from the fetched rows and the
// unpaginated total.
func NewPageResult[T any](items []T, total int64, params *PaginationParams) *PageResult[T] {
	totalPages := 0
	if params.PerPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.PerPage)))
	}
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}
}
