package collection

// Page is one window of a paginated slice.
type Page[T any] struct {
	Data       []T
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

// Paginate slices items into 1-based pages of pageSize elements. An
// out-of-range page yields empty Data rather than an error; a page below 1
// is clamped to the first page. The source slice is never mutated.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
