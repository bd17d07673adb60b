package domain

// Direction classifies a transaction as incoming or outgoing money.
type Direction int

const (
	In Direction = iota
	Out
)

// Transaction is a single money movement as returned by the remote API.
// Account holds the IBAN of the owning account; resolving it to a display
// name is best-effort enrichment done by the caller.
type Transaction struct {
	ID            int     `json:"id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	ProfileName   string  `json:"profile_name,omitempty"`
	Account       string  `json:"account"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// Direction derives the movement direction from the amount sign.
func (t Transaction) Direction() Direction {
	if t.Amount < 0 {
		return Out
	}
	return In
}

// NewTransaction is the payload for creating a transaction. Amount and
// Account are required by the server, the rest is optional.
type NewTransaction struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	ProfileName   string  `json:"profile_name,omitempty"`
	Account       string  `json:"account"`
	Description   string  `json:"description,omitempty"`
}
