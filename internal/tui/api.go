package tui

import (
	"context"
	"net/url"

	"findash/internal/client"
	"findash/internal/domain"
)

// API is the slice of the HTTP client the dashboard consumes. Tests swap in
// a fake.
type API interface {
	ListAccounts(ctx context.Context, params url.Values) (client.AccountList, error)
	FetchTransactionPage(ctx context.Context, params url.Values) (client.TransactionPage, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

func isTransportErr(err error) bool { return client.IsTransport(err) }

// viewState is the lifecycle of a list page: nothing fetched yet, a fetch in
// flight, data on screen, or a page-level error with a retry affordance.
type viewState int

const (
	stateIdle viewState = iota
	stateLoading
	stateReady
	stateError
)
