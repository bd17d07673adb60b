package tui

import (
	"fmt"
	"strconv"
	"strings"

	"findash/internal/domain"
	"findash/internal/i18n"
	"findash/internal/pagination"
)

// renderPaginationBar renders the "showing X-Y of N" line and the numbered
// page controls. Empty when there is nothing to page through.
func renderPaginationBar(p *domain.Pagination) string {
	if p == nil || p.Pages <= 1 {
		return ""
	}

	first, last := pagination.Shown(*p)
	info := fmt.Sprintf("%s %d-%d %s %d %s",
		i18n.T("pagination.showing"), first, last,
		i18n.T("pagination.of"), p.Total, i18n.T("pagination.results"))

	var parts []string
	prev := "← " + i18n.T("pagination.previous")
	if p.HasPrev {
		parts = append(parts, pageNumStyle.Render(prev))
	} else {
		parts = append(parts, mutedStyle.Render(prev))
	}
	for _, entry := range pagination.Window(p.Page, p.Pages) {
		switch {
		case entry.Ellipsis:
			parts = append(parts, mutedStyle.Render("…"))
		case entry.Page == p.Page:
			parts = append(parts, activePageStyle.Render(strconv.Itoa(entry.Page)))
		default:
			parts = append(parts, pageNumStyle.Render(strconv.Itoa(entry.Page)))
		}
	}
	next := i18n.T("pagination.next") + " →"
	if p.HasNext {
		parts = append(parts, pageNumStyle.Render(next))
	} else {
		parts = append(parts, mutedStyle.Render(next))
	}

	return mutedStyle.Render(info) + "\n" + strings.Join(parts, " ")
}

// fetchErrorText picks the user-facing diagnostic for a page-level failure:
// connection errors and server-reported load failures read differently.
func fetchErrorText(err error) string {
	if err == nil {
		return ""
	}
	if isTransportErr(err) {
		return i18n.T("common.connection_error")
	}
	return i18n.T("common.load_error")
}
