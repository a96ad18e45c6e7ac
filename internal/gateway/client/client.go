// Package client is the typed HTTP client the terminal gateway uses to talk to the API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

const defaultTimeout = 10 * time.Second

// APIError is returned when the API answers with an unexpected status.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api returned %d", e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client calls the Young Finance API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard calls GET /api/v1/analytics/dashboard.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.get(ctx, "/analytics/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthlySummary calls GET /api/v1/transactions/summary. Zero month or year lets the API default them.
func (c *Client) MonthlySummary(ctx context.Context, month, year int) (*MonthlySummary, error) {
	q := url.Values{}
	setInt(q, "month", month)
	setInt(q, "year", year)

	var out MonthlySummary
	if err := c.get(ctx, "/transactions/summary", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Trends calls GET /api/v1/transactions/trends.
func (c *Client) Trends(ctx context.Context, periods int) (*Trends, error) {
	q := url.Values{}
	setInt(q, "periods", periods)

	var out Trends
	if err := c.get(ctx, "/transactions/trends", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions calls GET /api/v1/transactions.
func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	q := url.Values{}
	setString(q, "type", filter.Type)
	setString(q, "category", filter.CategoryID)
	setString(q, "date_from", filter.DateFrom)
	setString(q, "date_to", filter.DateTo)

	var out TransactionList
	if err := c.get(ctx, "/transactions", q, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// CreateTransaction calls POST /api/v1/transactions.
func (c *Client) CreateTransaction(ctx context.Context, req NewTransaction) (*Transaction, error) {
	var out Transaction
	if err := c.post(ctx, "/transactions", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories calls GET /api/v1/categories.
func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]Category, error) {
	q := url.Values{}
	setString(q, "type", categoryType)

	var out CategoryList
	if err := c.get(ctx, "/categories", q, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// CreateCategory calls POST /api/v1/categories.
func (c *Client) CreateCategory(ctx context.Context, req NewCategory) (*Category, error) {
	var out Category
	if err := c.post(ctx, "/categories", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBudgets calls GET /api/v1/budgets.
func (c *Client) ListBudgets(ctx context.Context, month, year int) ([]Budget, error) {
	q := url.Values{}
	setInt(q, "month", month)
	setInt(q, "year", year)

	var out BudgetList
	if err := c.get(ctx, "/budgets", q, &out); err != nil {
		return nil, err
	}
	return out.Budgets, nil
}

// CreateBudget calls POST /api/v1/budgets.
func (c *Client) CreateBudget(ctx context.Context, req NewBudget) (*Budget, error) {
	var out Budget
	if err := c.post(ctx, "/budgets", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGoals calls GET /api/v1/goals.
func (c *Client) ListGoals(ctx context.Context, status string) ([]Goal, error) {
	q := url.Values{}
	setString(q, "status", status)

	var out GoalList
	if err := c.get(ctx, "/goals", q, &out); err != nil {
		return nil, err
	}
	return out.Goals, nil
}

// CreateGoal calls POST /api/v1/goals.
func (c *Client) CreateGoal(ctx context.Context, req NewGoal) (*Goal, error) {
	var out Goal
	if err := c.post(ctx, "/goals", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddAmount calls POST /api/v1/goals/:id/add_amount.
func (c *Client) AddAmount(ctx context.Context, goalID string, amount decimal.Decimal) (*AddAmountResult, error) {
	var out AddAmountResult
	path := "/goals/" + url.PathEscape(goalID) + "/add_amount"
	if err := c.post(ctx, path, dto.AddAmountRequest{Amount: amount}, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLessons calls GET /api/v1/lessons.
func (c *Client) ListLessons(ctx context.Context, level string) ([]Lesson, error) {
	q := url.Values{}
	setString(q, "level", level)

	var out LessonList
	if err := c.get(ctx, "/lessons", q, &out); err != nil {
		return nil, err
	}
	return out.Lessons, nil
}

// GetLesson calls GET /api/v1/lessons/:id.
func (c *Client) GetLesson(ctx context.Context, id string) (*Lesson, error) {
	var out Lesson
	if err := c.get(ctx, "/lessons/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, "/api/v1"+path, query, nil, http.StatusOK, out)
}

func (c *Client) post(ctx context.Context, path string, body any, want int, out any) error {
	return c.do(ctx, http.MethodPost, "/api/v1"+path, nil, body, want, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, want int, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body ErrorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func setInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
