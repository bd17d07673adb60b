package stubserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/internal/domain"
	"findash/internal/stubserver"
)

type listResponse struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      string             `json:"error"`
	Pagination *domain.Pagination `json:"pagination"`
}

func getJSON(t *testing.T, ts *httptest.Server, path string) listResponse {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(stubserver.New().Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestTransactionsPaginationMath(t *testing.T) {
	ts := newTestServer(t)

	out := getJSON(t, ts, "/api/transactions?limit=10&offset=40")
	require.True(t, out.Success)
	require.NotNil(t, out.Pagination)
	assert.Equal(t, 5, out.Pagination.Page)
	assert.Equal(t, 5, out.Pagination.Pages)
	assert.Equal(t, 45, out.Pagination.Total)
	assert.False(t, out.Pagination.HasNext)
	assert.True(t, out.Pagination.HasPrev)

	var items []domain.Transaction
	require.NoError(t, json.Unmarshal(out.Data, &items))
	assert.Len(t, items, 5)
}

func TestTransactionsNewestFirst(t *testing.T) {
	ts := newTestServer(t)

	out := getJSON(t, ts, "/api/transactions?limit=45&offset=0")
	var items []domain.Transaction
	require.NoError(t, json.Unmarshal(out.Data, &items))
	require.Len(t, items, 45)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].CreatedAt, items[i].CreatedAt)
	}
}

func TestTransactionsDateRangeInclusive(t *testing.T) {
	ts := newTestServer(t)

	// Seeded transactions land at noon on consecutive days from 2024-03-01.
	out := getJSON(t, ts, "/api/transactions?limit=50&offset=0&start_date=2024-03-10&end_date=2024-03-12")
	var items []domain.Transaction
	require.NoError(t, json.Unmarshal(out.Data, &items))
	assert.Len(t, items, 3)
	for _, tx := range items {
		assert.GreaterOrEqual(t, tx.CreatedAt, "2024-03-10")
		assert.Less(t, tx.CreatedAt, "2024-03-13")
	}
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)

	out := getJSON(t, ts, "/api/stats")
	require.True(t, out.Success)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(out.Data, &stats))
	assert.Equal(t, 45, stats.TransactionCount)
	assert.InDelta(t, 178916.30, stats.TotalBalance, 0.001)
	require.Len(t, stats.RecentTransactions, 5)
	assert.Equal(t, 45, stats.RecentTransactions[0].ID, "newest transaction leads the recent list")
}

func TestCreateTransactionValidatesRequiredFields(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"account":"RO49BTRL0000012345678901"}`)
	resp, err := http.Post(ts.URL+"/api/transactions", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "amount")
}

func TestCreateTransactionAppears(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"amount":99.5,"account":"RO12BRDE0000098765432109","description":"chirie"}`)
	resp, err := http.Post(ts.URL+"/api/transactions", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Success)
	var created domain.Transaction
	require.NoError(t, json.Unmarshal(out.Data, &created))
	assert.Equal(t, 46, created.ID)

	stats := getJSON(t, ts, "/api/stats")
	var s domain.Stats
	require.NoError(t, json.Unmarshal(stats.Data, &s))
	assert.Equal(t, 46, s.TransactionCount)
}
