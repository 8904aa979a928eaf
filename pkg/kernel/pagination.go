package kernel

// PaginationOptions carries the requested page window
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Page describes the page actually returned
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// Paginated wraps a page of items with its page metadata
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// Offset returns the row offset for the requested window
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NewPage computes page metadata from a total row count
func NewPage(opts PaginationOptions, total int) Page {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return Page{
		Number: opts.Page,
		Size:   opts.PageSize,
		Total:  total,
		Pages:  pages,
	}
}
