// Package pagination computes which page numbers a pagination control shows.
package pagination

import "findash/internal/domain"

// Entry is one slot of a pagination control: a clickable page number, or a
// non-interactive ellipsis standing in for skipped pages.
type Entry struct {
	Page     int
	Ellipsis bool
}

const maxPlainPages = 5

// Window returns the entries to render for the given current page and page
// count. Up to five pages are listed outright; beyond that a five-wide window
// around the current page is framed by the first and last page, with
// ellipses marking any gaps. Nil when there is a single page or less.
func Window(current, totalPages int) []Entry {
	if totalPages <= 1 {
		return nil
	}
	if totalPages <= maxPlainPages {
		entries := make([]Entry, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			entries = append(entries, Entry{Page: p})
		}
		return entries
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	start := max(1, current-2)
	end := min(totalPages, current+2)

	var entries []Entry
	if start > 1 {
		entries = append(entries, Entry{Page: 1})
		if start > 2 {
			entries = append(entries, Entry{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		entries = append(entries, Entry{Page: p})
	}
	if end < totalPages {
		if end < totalPages-1 {
			entries = append(entries, Entry{Ellipsis: true})
		}
		entries = append(entries, Entry{Page: totalPages})
	}
	return entries
}

// Shown returns the 1-based index range of the items visible on the current
// page, for the "showing X-Y of N results" line.
func Shown(p domain.Pagination) (first, last int) {
	first = (p.Page-1)*p.Limit + 1
	last = min(p.Page*p.Limit, p.Total)
	return first, last
}
