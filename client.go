package folio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Client talks to the portfolio API.
//
// Calls go through a token bucket limiter and a circuit breaker that opens
// after 3 consecutive failures. Nothing is retried.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(c *http.Client) Option { return func(cl *Client) { cl.http = c } }

// WithTimeout sets the timeout of each request.
func WithTimeout(d time.Duration) Option { return func(cl *Client) { cl.http.Timeout = d } }

// WithRateLimit limits requests to r per second with the given burst.
func WithRateLimit(r float64, burst int) Option {
	return func(cl *Client) { cl.limiter = rate.NewLimiter(rate.Limit(r), burst) }
}

// NewClient returns a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(5, 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    base.Host,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// client errors are the caller's fault, they don't say anything about the API health.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return !apiErr.Temporary()
			}
			return err == nil || errors.Is(err, ErrMalformed) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("api %s circuit breaker: %v -> %v", name, from, to)
		},
	})
	return c, nil
}

// do performs a request and decodes the JSON response into out (if not nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.roundTrip(ctx, method, path, in, out)
	})
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	body, err := jencode(in)
	if err != nil {
		return fmt.Errorf("cannot encode %s %s request: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Detail: errorDetail(raw)}
	}
	if err := jdecode(resp.Body, out); err != nil {
		return fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

type validator interface{ Validate() error }

// fetch GETs path and validates the result.
func fetch[T validator](ctx context.Context, c *Client, path string) (T, error) {
	var v T
	if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
		return v, err
	}
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("invalid GET %s response: %w", path, err)
	}
	return v, nil
}

// Summary returns the summary cards figures.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	return fetch[Summary](ctx, c, "/summary")
}

// PerformanceSeries returns the portfolio valuation series.
func (c *Client) PerformanceSeries(ctx context.Context) (Series, error) {
	return fetch[Series](ctx, c, "/charts/portfolio-linechart")
}

// Allocation returns the portfolio breakdown by asset.
func (c *Client) Allocation(ctx context.Context) (Allocation, error) {
	return fetch[Allocation](ctx, c, "/charts/portfolio-piechart")
}

// Holdings returns the change of each top holding over the past month.
func (c *Client) Holdings(ctx context.Context) (Holdings, error) {
	return fetch[Holdings](ctx, c, "/charts/portfolio-barchart")
}

// Positions returns the current positions.
func (c *Client) Positions(ctx context.Context) (Positions, error) {
	return fetch[Positions](ctx, c, "/portfolio")
}

// Transactions returns all the transactions.
func (c *Client) Transactions(ctx context.Context) (Transactions, error) {
	return fetch[Transactions](ctx, c, "/transactions-table")
}

// CreateTransaction records a new transaction and returns it as stored by the API.
func (c *Client) CreateTransaction(ctx context.Context, r TransactionRequest) (Transaction, error) {
	if err := r.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/transaction", r, &tx); err != nil {
		return Transaction{}, err
	}
	if err := tx.Validate(); err != nil {
		return tx, fmt.Errorf("invalid POST /transaction response: %w", err)
	}
	return tx, nil
}

// UpdateTransaction replaces the transaction with the given id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, r TransactionRequest) (Transaction, error) {
	if id == "" {
		return Transaction{}, errors.New("transaction id is required")
	}
	if err := r.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	path := "/transaction/" + url.PathEscape(id)
	var tx Transaction
	if err := c.do(ctx, http.MethodPut, path, r, &tx); err != nil {
		return Transaction{}, err
	}
	if err := tx.Validate(); err != nil {
		return tx, fmt.Errorf("invalid PUT %s response: %w", path, err)
	}
	return tx, nil
}

// DeleteTransaction deletes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("transaction id is required")
	}
	return c.do(ctx, http.MethodDelete, "/transaction/"+url.PathEscape(id), nil, nil)
}
