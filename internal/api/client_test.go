package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mybudget/internal/core"
	"mybudget/internal/log"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, Options{}, log.Default(log.ComponentAPI))
	return client, srv
}

func TestFetchTransactions(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/transactions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"t1","amount":"45.5","category":"food","type":"expense","date":"2025-03-01T10:00:00Z"},
			{"id":"t2","amount":1200,"category":"salary","type":"income","date":"2025-03-02T09:00:00Z"}]`))
	}))

	txns, err := client.FetchTransactions(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactions: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if got := txns[0].Amount.String(); got != "45.5" {
		t.Errorf("expected string amount to decode as 45.5, got %s", got)
	}
	if got := txns[1].Amount.String(); got != "1200" {
		t.Errorf("expected numeric amount to decode as 1200, got %s", got)
	}
}

func TestFetchTransactionsNullPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))

	txns, err := client.FetchTransactions(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactions: %v", err)
	}
	if txns == nil || len(txns) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", txns)
	}
}

func TestBearerTokenHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.FetchTransactions(context.Background()); err != nil {
		t.Fatalf("anonymous fetch: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("anonymous request carried Authorization header %q", gotAuth)
	}

	client.SetToken("tok-123")
	if _, err := client.FetchTransactions(context.Background()); err != nil {
		t.Fatalf("authenticated fetch: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected Bearer tok-123, got %q", gotAuth)
	}

	client.SetToken("")
	if _, err := client.FetchTransactions(context.Background()); err != nil {
		t.Fatalf("fetch after clearing token: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("cleared token still sent as %q", gotAuth)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))

	_, err := client.FetchProfile(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("expected code 401, got %d", statusErr.Code)
	}
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"token":"tok-abc","user":{"email":"a@b.co","username":"a"}}`))
	}))

	res, err := client.Login(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "tok-abc" {
		t.Errorf("expected token tok-abc, got %q", res.Token)
	}
	if res.User == nil || res.User.Email != "a@b.co" {
		t.Errorf("unexpected user %#v", res.User)
	}
}

func TestRegisterEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	if err := client.Register(context.Background(), "a@b.co", "a", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestCreateTransaction(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/transactions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":"srv-1","amount":10,"category":"food","type":"expense","date":"2025-03-01T10:00:00Z"}`))
	}))

	created, err := client.CreateTransaction(context.Background(), core.Transaction{
		Amount:   core.NewAmount(10),
		Category: core.CategoryFood,
		Type:     core.Expense,
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if created.ID != "srv-1" {
		t.Errorf("expected server id, got %q", created.ID)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	for i := 0; i < 5; i++ {
		if _, err := client.FetchGoals(context.Background()); err == nil {
			t.Fatalf("request %d unexpectedly succeeded", i)
		}
	}

	// Breaker is open now; requests fail without reaching the server.
	srv.Close()
	_, err := client.FetchGoals(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable once open, got %v", err)
	}
}
