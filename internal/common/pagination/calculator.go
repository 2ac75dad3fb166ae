package pagination

// CalculateOffset calculates the database OFFSET value based on page number
// and limit. Page numbers are 1-based, so page 1 has offset 0.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. An empty result set still has one page.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
