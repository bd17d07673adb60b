// Package query turns UI filter state into request parameters for the
// paginated list endpoints.
package query

import (
	"net/url"
	"strconv"
)

// Filters is the filter state of a paginated listing. Empty strings mean the
// dimension is not filtered. Date values are opaque YYYY-MM-DD strings whose
// format is a contract with the remote API, not validated here. Limit must
// already be a positive integer; coercing user input is the UI's job.
type Filters struct {
	Account   string
	StartDate string
	EndDate   string
	Limit     int
}

// Active reports whether any filter dimension is set. The transaction page
// shows its active-filters banner off this.
func (f Filters) Active() bool {
	return f.Account != "" || f.StartDate != "" || f.EndDate != ""
}

// Build converts the filter state and a 1-based page number into request
// parameters. limit and offset are always present, account and the two date
// bounds only when set.
func (f Filters) Build(page int) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(f.Limit))
	params.Set("offset", strconv.Itoa((page-1)*f.Limit))
	if f.Account != "" {
		params.Set("account", f.Account)
	}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	return params
}
