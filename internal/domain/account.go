package domain

// Account is a bank account as returned by the remote API. JSON field names
// follow the wire contract; banca and compania are the bank and company
// display labels.
type Account struct {
	ID        int     `json:"id"`
	IBAN      string  `json:"iban"`
	Banca     string  `json:"banca"`
	Compania  string  `json:"compania"`
	Sum       float64 `json:"sum"`
	CreatedAt string  `json:"created_at"`
}

// TotalBalance sums the balances of the given accounts. The figure covers
// exactly the accounts passed in, so a caller holding one page of results
// gets a page total, not a global one.
func TotalBalance(accounts []Account) float64 {
	var total float64
	for _, a := range accounts {
		total += a.Sum
	}
	return total
}

// AccountsByIBAN indexes accounts by IBAN for display enrichment of
// transaction rows.
func AccountsByIBAN(accounts []Account) map[string]Account {
	byIBAN := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byIBAN[a.IBAN] = a
	}
	return byIBAN
}
