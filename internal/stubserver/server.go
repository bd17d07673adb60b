// Package stubserver is an in-memory stand-in for the remote dashboard API,
// good enough for demos and tests. Data lives only for the lifetime of the
// process.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"findash/internal/domain"
)

// Server holds the seeded dataset and serves the four API endpoints.
type Server struct {
	mu           sync.Mutex
	accounts     []domain.Account
	transactions []domain.Transaction
	nextTxID     int
	log          *logrus.Logger
}

// New creates a server with a deterministic seeded dataset: a handful of
// accounts and enough transactions that pagination kicks in.
func New() *Server {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	s := &Server{log: logger}
	s.seed()
	return s
}

// Handler returns the router serving the API under the /api prefix.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/accounts", s.handleAccounts).Methods(http.MethodGet)
	api.HandleFunc("/transactions", s.handleTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", s.handleCreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

// envelope matches the wire format the real backend produces.
type envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// paging reproduces the original backend's pagination arithmetic.
func paging(limit, offset, total int) *domain.Pagination {
	return &domain.Pagination{
		Page:    offset/limit + 1,
		Limit:   limit,
		Total:   total,
		Pages:   (total + limit - 1) / limit,
		HasNext: offset+limit < total,
		HasPrev: offset > 0,
	}
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	if limit == 0 {
		limit = 10
	}
	offset := queryInt(r, "offset", 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.accounts)
	pageItems := slicePage(s.accounts, offset, limit)
	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       pageItems,
		Pagination: paging(limit, offset, total),
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	if limit == 0 {
		limit = 50
	}
	offset := queryInt(r, "offset", 0)
	account := r.URL.Query().Get("account")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]domain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if account != "" && tx.Account != account {
			continue
		}
		if !withinDates(tx.CreatedAt, startDate, endDate) {
			continue
		}
		filtered = append(filtered, tx)
	}
	// Newest first, like the real backend's order by created_at desc.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt > filtered[j].CreatedAt
	})

	total := len(filtered)
	pageItems := slicePage(filtered, offset, limit)
	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       pageItems,
		Pagination: paging(limit, offset, total),
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Amount        *float64 `json:"amount"`
		Account       *string  `json:"account"`
		Currency      string   `json:"currency"`
		InvoiceNumber string   `json:"invoice_number"`
		ProfileName   string   `json:"profile_name"`
		Description   string   `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Amount == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: amount")
		return
	}
	if payload.Account == nil || *payload.Account == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: account")
		return
	}

	currency := payload.Currency
	if currency == "" {
		currency = "RON"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := domain.Transaction{
		ID:            s.nextTxID,
		Amount:        *payload.Amount,
		Currency:      currency,
		InvoiceNumber: payload.InvoiceNumber,
		ProfileName:   payload.ProfileName,
		Account:       *payload.Account,
		Description:   payload.Description,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	s.nextTxID++
	s.transactions = append(s.transactions, tx)

	s.log.WithFields(logrus.Fields{"id": tx.ID, "account": tx.Account}).Info("transaction created")
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: tx})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]domain.Transaction, len(s.transactions))
	copy(recent, s.transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: domain.Stats{
			TotalBalance:       domain.TotalBalance(s.accounts),
			TransactionCount:   len(s.transactions),
			RecentTransactions: recent,
		},
	})
}

func slicePage[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// withinDates checks a created_at timestamp against the optional inclusive
// YYYY-MM-DD bounds. Unparseable bounds are ignored, matching the lenient
// behavior of the real backend.
func withinDates(createdAt, startDate, endDate string) bool {
	if startDate == "" && endDate == "" {
		return true
	}
	when, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return true
	}
	if startDate != "" {
		if start, err := time.Parse("2006-01-02", startDate); err == nil && when.Before(start) {
			return false
		}
	}
	if endDate != "" {
		if end, err := time.Parse("2006-01-02", endDate); err == nil && !when.Before(end.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

func (s *Server) seed() {
	s.accounts = []domain.Account{
		{ID: 1, IBAN: "RO49BTRL0000012345678901", Banca: "Banca Transilvania", Compania: "Impact SRL", Sum: 45230.50},
		{ID: 2, IBAN: "RO12BRDE0000098765432109", Banca: "BRD", Compania: "Impact SRL", Sum: 12890.00},
		{ID: 3, IBAN: "RO88INGB0000011223344556", Banca: "ING Bank", Compania: "Nova Trading SRL", Sum: -1340.75},
		{ID: 4, IBAN: "RO33RNCB0000066778899001", Banca: "BCR", Compania: "Nova Trading SRL", Sum: 98450.25},
		{ID: 5, IBAN: "RO21RZBR0000044556677889", Banca: "Raiffeisen Bank", Compania: "Impact SRL", Sum: 7600.00},
		{ID: 6, IBAN: "RO64UGBI0000033445566778", Banca: "Garanti BBVA", Compania: "Delta Serv SRL", Sum: 310.40},
		{ID: 7, IBAN: "RO55CECE0000022334455667", Banca: "CEC Bank", Compania: "Delta Serv SRL", Sum: 15775.90},
	}
	for i := range s.accounts {
		s.accounts[i].CreatedAt = time.Date(2024, 1, 1+i*3, 9, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}

	descriptions := []string{
		"Plată factură utilități",
		"Încasare client",
		"Transfer intern",
		"Plată furnizor",
		"Comision bancar",
		"Salarii",
	}
	profiles := []string{"Ion Popescu", "Maria Ionescu", "Andrei Georgescu"}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		amount := float64((i%9)+1) * 125.50
		if i%3 == 0 {
			amount = -amount
		}
		tx := domain.Transaction{
			ID:          i + 1,
			Amount:      amount,
			Currency:    "RON",
			ProfileName: profiles[i%len(profiles)],
			Account:     s.accounts[i%len(s.accounts)].IBAN,
			Description: descriptions[i%len(descriptions)],
			CreatedAt:   base.AddDate(0, 0, i).Format(time.RFC3339),
		}
		if i%4 == 0 {
			tx.InvoiceNumber = fmt.Sprintf("FACT-%04d", 1000+i)
		}
		s.transactions = append(s.transactions, tx)
	}
	s.nextTxID = len(s.transactions) + 1
}
