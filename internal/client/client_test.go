package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/internal/client"
	"findash/internal/domain"
	"findash/internal/query"
	"findash/internal/stubserver"
)

func newStubClient(t *testing.T) *client.Client {
	t.Helper()
	ts := httptest.NewServer(stubserver.New().Handler())
	t.Cleanup(ts.Close)
	return client.New(ts.URL+"/api", 0)
}

func TestListAccountsFirstPage(t *testing.T) {
	c := newStubClient(t)

	list, err := c.ListAccounts(context.Background(), query.Filters{Limit: 6}.Build(1))
	require.NoError(t, err)
	assert.Len(t, list.Items, 6)

	p := list.Pagination
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.Limit)
	assert.Equal(t, 7, p.Total)
	assert.Equal(t, 2, p.Pages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestListAccountsIsIdempotent(t *testing.T) {
	c := newStubClient(t)
	params := query.Filters{Limit: 6}.Build(1)

	first, err := c.ListAccounts(context.Background(), params)
	require.NoError(t, err)
	second, err := c.ListAccounts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListTransactionsHonorsAccountFilter(t *testing.T) {
	c := newStubClient(t)

	all, err := c.ListTransactions(context.Background(), query.Filters{Limit: 5}.Build(1))
	require.NoError(t, err)
	require.NotEmpty(t, all.Items)
	iban := all.Items[0].Account

	filtered, err := c.ListTransactions(context.Background(), query.Filters{Account: iban, Limit: 50}.Build(1))
	require.NoError(t, err)
	require.NotEmpty(t, filtered.Items)
	for _, tx := range filtered.Items {
		assert.Equal(t, iban, tx.Account)
	}
	assert.Less(t, filtered.Pagination.Total, all.Pagination.Total)
}

func TestEmptySuccessfulEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()
	c := client.New(ts.URL, 0)

	list, err := c.ListAccounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Nil(t, list.Pagination)
}

func TestServerReportedFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	}))
	defer ts.Close()
	c := client.New(ts.URL, 0)

	_, err := c.ListAccounts(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, client.IsTransport(err), "success:false is a server failure, not a transport one")
	assert.Contains(t, err.Error(), "boom")
}

func TestConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()
	c := client.New(ts.URL, 0)

	_, err := c.ListAccounts(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, client.IsTransport(err))
}

func TestTimeoutIsTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()
	c := client.New(ts.URL, 20*time.Millisecond)

	_, err := c.ListAccounts(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, client.IsTransport(err))
}

func TestMalformedBodyIsTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()
	c := client.New(ts.URL, 0)

	_, err := c.ListAccounts(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, client.IsTransport(err))
}

// The transactions view survives a failing accounts fetch: the primary list
// still renders, rows just fall back to raw IBANs.
func TestFetchTransactionPageDegradesWithoutAccounts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"amount":-10,"currency":"RON","account":"RO00BANK0000000000000000","created_at":"2024-03-01T12:00:00Z"}],"pagination":{"page":1,"limit":10,"total":1,"pages":1,"has_next":false,"has_prev":false}}`))
	})
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	c := client.New(ts.URL+"/api", 0)

	page, err := c.FetchTransactionPage(context.Background(), query.Filters{Account: "RO00BANK0000000000000000", Limit: 10}.Build(1))
	require.NoError(t, err)
	require.Len(t, page.Transactions.Items, 1)
	assert.Equal(t, "RO00BANK0000000000000000", page.Transactions.Items[0].Account)
	assert.Empty(t, page.Accounts)
}

func TestFetchTransactionPagePrimaryFailureDominates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"db down"}`))
	})
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	c := client.New(ts.URL+"/api", 0)

	_, err := c.FetchTransactionPage(context.Background(), query.Filters{Limit: 10}.Build(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCreateTransactionRoundTrip(t *testing.T) {
	c := newStubClient(t)

	created, err := c.CreateTransaction(context.Background(), domain.NewTransaction{
		Amount:      -250.75,
		Account:     "RO49BTRL0000012345678901",
		Description: "test payment",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, -250.75, created.Amount)
	assert.Equal(t, "RON", created.Currency, "currency defaults server-side")

	list, err := c.ListTransactions(context.Background(), query.Filters{Account: created.Account, Limit: 100}.Build(1))
	require.NoError(t, err)
	found := false
	for _, tx := range list.Items {
		if tx.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateTransactionValidation(t *testing.T) {
	c := newStubClient(t)

	_, err := c.CreateTransaction(context.Background(), domain.NewTransaction{Amount: 10})
	require.Error(t, err)
	assert.False(t, client.IsTransport(err))
	assert.Contains(t, err.Error(), "account")
}
