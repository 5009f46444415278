package pagination

// PerPage is the fixed page size used by every paginated listing.
const PerPage = 10

// Page slices an already-ordered collection down to the requested
// 1-based page. Pages below 1 are treated as the first page, and a
// page past the end of the collection yields an empty slice.
func Page[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PerPage
	if start >= len(items) {
		return []T{}
	}

	end := start + PerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
