package dto

// Page is one page of records plus the pagination envelope. PageSize reflects
// the pagination_size setting as resolved for this call.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles a Page, deriving TotalPages from the total count.
func NewPage[T any](items []T, page, size int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   size,
		TotalCount: total,
		TotalPages: totalPages,
	}
}
