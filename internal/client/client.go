// Package client is the HTTP client for the dashboard API. Every call
// performs a fresh request; nothing is cached and in-flight requests are not
// deduplicated.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"findash/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client talks to the dashboard API under a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

// New creates a client for the API at baseURL (including the /api prefix).
// A non-positive timeout falls back to the 10 second default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "api-client"}),
	}
}

// envelope is the uniform wrapper every endpoint responds with.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      string             `json:"error"`
	Pagination *domain.Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload any) (*envelope, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to build request", Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to read response", Err: err}
	}

	// Error responses still carry the envelope with the server's message, so
	// decode before looking at the status code.
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
		}
		return nil, &Error{Kind: KindTransport, Message: "malformed response", Err: err}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "server reported failure"
		}
		return nil, &Error{Kind: KindServer, Message: msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	return &env, nil
}

// AccountList is one page of accounts. Pagination is nil when the server
// omitted the paging block.
type AccountList struct {
	Items      []domain.Account
	Pagination *domain.Pagination
}

// TransactionList is one page of transactions.
type TransactionList struct {
	Items      []domain.Transaction
	Pagination *domain.Pagination
}

// ListAccounts fetches one page of accounts. A successful envelope without
// data yields an empty list.
func (c *Client) ListAccounts(ctx context.Context, params url.Values) (AccountList, error) {
	env, err := c.do(ctx, http.MethodGet, "/accounts", params, nil)
	if err != nil {
		return AccountList{}, err
	}
	var items []domain.Account
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return AccountList{}, &Error{Kind: KindTransport, Message: "malformed account data", Err: err}
		}
	}
	c.log.Debug("fetched accounts", "count", len(items))
	return AccountList{Items: items, Pagination: env.Pagination}, nil
}

// ListTransactions fetches one page of transactions for the given filter
// parameters.
func (c *Client) ListTransactions(ctx context.Context, params url.Values) (TransactionList, error) {
	env, err := c.do(ctx, http.MethodGet, "/transactions", params, nil)
	if err != nil {
		return TransactionList{}, err
	}
	var items []domain.Transaction
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return TransactionList{}, &Error{Kind: KindTransport, Message: "malformed transaction data", Err: err}
		}
	}
	c.log.Debug("fetched transactions", "count", len(items))
	return TransactionList{Items: items, Pagination: env.Pagination}, nil
}

// Stats fetches the dashboard summary.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/stats", nil, nil)
	if err != nil {
		return domain.Stats{}, err
	}
	var stats domain.Stats
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			return domain.Stats{}, &Error{Kind: KindTransport, Message: "malformed stats data", Err: err}
		}
	}
	return stats, nil
}

// CreateTransaction posts a new transaction and returns the stored record.
func (c *Client) CreateTransaction(ctx context.Context, tx domain.NewTransaction) (domain.Transaction, error) {
	env, err := c.do(ctx, http.MethodPost, "/transactions", nil, tx)
	if err != nil {
		return domain.Transaction{}, err
	}
	var created domain.Transaction
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &created); err != nil {
			return domain.Transaction{}, &Error{Kind: KindTransport, Message: "malformed transaction data", Err: err}
		}
	}
	c.log.Info("transaction created", "id", created.ID, "account", created.Account)
	return created, nil
}

// TransactionPage is the combined result behind the transactions view: the
// filtered transaction page plus the full account list used to enrich rows
// with bank and company names. Accounts may be empty when the enrichment
// fetch failed.
type TransactionPage struct {
	Transactions TransactionList
	Accounts     []domain.Account
}

// FetchTransactionPage loads the transaction page and the account list
// concurrently. A transaction failure is returned as the page failure; an
// account failure only degrades enrichment to raw IBANs and is logged, never
// surfaced.
func (c *Client) FetchTransactionPage(ctx context.Context, params url.Values) (TransactionPage, error) {
	var (
		wg     sync.WaitGroup
		txs    TransactionList
		txErr  error
		accs   AccountList
		accErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		txs, txErr = c.ListTransactions(ctx, params)
	}()
	go func() {
		defer wg.Done()
		accs, accErr = c.ListAccounts(ctx, nil)
	}()
	wg.Wait()

	if txErr != nil {
		return TransactionPage{}, txErr
	}
	if accErr != nil {
		c.log.Warn("account enrichment unavailable", "err", accErr)
	}
	return TransactionPage{Transactions: txs, Accounts: accs.Items}, nil
}
