// Package api is the HTTP client for the remote finance API. It owns the
// wire contract: JSON bodies, a bearer token header when a session exists,
// and a circuit breaker so a dead backend fails fast instead of making every
// screen wait out a timeout. There is no retry and no backoff here; a failed
// call simply pushes the caller onto its cached data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"mybudget/internal/core"
	"mybudget/internal/log"
)

// Profile is the server-side copy of the user's preferences.
type Profile struct {
	Language core.Language  `json:"language"`
	Currency *core.Currency `json:"currency"`
}

// AuthResult is the login response: a token, a user record, or both.
type AuthResult struct {
	Token string     `json:"token"`
	User  *core.User `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *log.Logger

	mu    sync.RWMutex
	token string
}

// Options tune the client; zero values pick sane defaults.
type Options struct {
	Timeout        time.Duration
	BreakerTimeout time.Duration
}

func NewClient(baseURL string, opts Options, logger *log.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default(log.ComponentAPI)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "remote-api",
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"from", from.String(), "to", to.String())
		},
	})

	return c
}

// SetToken installs the bearer token used on subsequent requests. An empty
// token switches the client back to anonymous requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// FetchTransactions returns the server's transaction list; an empty or null
// payload reads as an empty list.
func (c *Client) FetchTransactions(ctx context.Context) ([]core.Transaction, error) {
	var txns []core.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &txns); err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []core.Transaction{}
	}
	return txns, nil
}

// CreateTransaction uploads a transaction and returns the created record.
func (c *Client) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	var created core.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", tx, &created); err != nil {
		return core.Transaction{}, err
	}
	return created, nil
}

// FetchGoals returns the server's goal list.
func (c *Client) FetchGoals(ctx context.Context) ([]core.Goal, error) {
	var list []core.Goal
	if err := c.do(ctx, http.MethodGet, "/api/objectives", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []core.Goal{}
	}
	return list, nil
}

// SaveGoal uploads a goal and returns the stored record.
func (c *Client) SaveGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	var saved core.Goal
	if err := c.do(ctx, http.MethodPost, "/api/objectives", g, &saved); err != nil {
		return core.Goal{}, err
	}
	return saved, nil
}

// FetchProfile returns the remote language/currency preferences.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login exchanges credentials for a token or user record.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account; the server answers 201 with no useful body.
func (c *Client) Register(ctx context.Context, email, username, password string) error {
	body := map[string]string{"email": email, "username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// ForgotPassword asks the server to dispatch a reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.roundTrip(ctx, method, path, body, out)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		c.logger.WarnContext(ctx, "request short-circuited",
			log.FieldMethod, method, log.FieldURL, path)
		return fmt.Errorf("%w: %s %s", ErrUnavailable, method, path)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			log.FieldMethod, method, log.FieldURL, path, log.FieldError, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		log.FieldMethod, method, log.FieldURL, path,
		log.FieldStatus, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
