// Package algorithms holds small pure algorithms shared across
// services and handlers.
package algorithms

// Ellipsis marks a gap slot in a page-button window.
const Ellipsis = -1

// PageWindow computes the page-button set for a paginated listing:
// page 1 first, a leading ellipsis when current > 3, up to five buttons
// centered on current and clamped to the valid range, a trailing
// ellipsis when current < total-2, then the last page. current is
// clamped into [1, total] before the window is built.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	pages := make([]int, 0, 9)
	pages = append(pages, 1)
	if total == 1 {
		return pages
	}

	if current > 3 {
		pages = append(pages, Ellipsis)
	}

	start := current - 2
	if start < 2 {
		start = 2
	}
	end := current + 2
	if end > total-1 {
		end = total - 1
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	if current < total-2 {
		pages = append(pages, Ellipsis)
	}
	pages = append(pages, total)
	return pages
}
