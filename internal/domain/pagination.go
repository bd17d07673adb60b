package domain

// Pagination is the server-computed paging block attached to list responses.
// The server guarantees has_next == (page < pages) and has_prev == (page > 1).
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}
