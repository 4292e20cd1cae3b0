// Package client is a typed wrapper over the Moment REST API for Go
// frontends and tooling. Every call sends the configured bearer token and
// unwraps the {success, data} envelope; non-2xx responses surface the
// server's {error} message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"moment/internal/domain/entity"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token, e.g. after a refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}

func setPageParams(query url.Values, page, limit int) {
	if page > 0 {
		query.Set("page", fmt.Sprintf("%d", page))
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
}

// Auth

type RegisterRequest struct {
	UID        string `json:"uid"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role,omitempty"`
	Experience string `json:"experience,omitempty"`
	Address    string `json:"address,omitempty"`
	AadharURL  string `json:"aadharUrl,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SetAdmin(ctx context.Context, uid, adminSecret string) error {
	body := map[string]string{"adminSecret": adminSecret}
	return c.do(ctx, http.MethodPost, "/auth/set-admin/"+url.PathEscape(uid), nil, body, nil)
}

func (c *Client) SetClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	body := map[string]interface{}{"claims": claims}
	return c.do(ctx, http.MethodPost, "/auth/set-claims/"+url.PathEscape(uid), nil, body, nil)
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(uid), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (c *Client) UpdateUser(ctx context.Context, uid string, req UpdateUserRequest) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(uid), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(uid), nil, nil, nil)
}

// Providers

type ProviderQuery struct {
	Status    string
	Category  string
	Published *bool
	Page      int
	Limit     int
}

func (c *Client) ListProviders(ctx context.Context, q ProviderQuery) ([]*entity.Provider, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Published != nil {
		query.Set("published", fmt.Sprintf("%t", *q.Published))
	}
	setPageParams(query, q.Page, q.Limit)

	var providers []*entity.Provider
	if err := c.do(ctx, http.MethodGet, "/providers", query, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *Client) GetProvider(ctx context.Context, id string) (*entity.Provider, error) {
	var provider entity.Provider
	if err := c.do(ctx, http.MethodGet, "/providers/"+url.PathEscape(id), nil, nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) GetProviderByUser(ctx context.Context, uid string) (*entity.Provider, error) {
	var provider entity.Provider
	if err := c.do(ctx, http.MethodGet, "/providers/user/"+url.PathEscape(uid), nil, nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) CreateProvider(ctx context.Context, req map[string]interface{}) (*entity.Provider, error) {
	var provider entity.Provider
	if err := c.do(ctx, http.MethodPost, "/providers", nil, req, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) UpdateProvider(ctx context.Context, id string, req map[string]interface{}) (*entity.Provider, error) {
	var provider entity.Provider
	if err := c.do(ctx, http.MethodPut, "/providers/"+url.PathEscape(id), nil, req, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) UpdateProviderStatus(ctx context.Context, id, status string) (*entity.Provider, error) {
	var provider entity.Provider
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/providers/"+url.PathEscape(id)+"/status", nil, body, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) SetProviderPublished(ctx context.Context, id string, published bool) (*entity.Provider, error) {
	var provider entity.Provider
	body := map[string]bool{"published": published}
	if err := c.do(ctx, http.MethodPatch, "/providers/"+url.PathEscape(id)+"/publish", nil, body, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) DeleteProvider(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/providers/"+url.PathEscape(id), nil, nil, nil)
}

// Services

type ServiceQuery struct {
	Category  string
	Available *bool
	Page      int
	Limit     int
}

func (c *Client) ListServices(ctx context.Context, q ServiceQuery) ([]*entity.Service, error) {
	query := url.Values{}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Available != nil {
		query.Set("available", fmt.Sprintf("%t", *q.Available))
	}
	setPageParams(query, q.Page, q.Limit)

	var services []*entity.Service
	if err := c.do(ctx, http.MethodGet, "/services", query, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*entity.Service, error) {
	var service entity.Service
	if err := c.do(ctx, http.MethodGet, "/services/"+url.PathEscape(id), nil, nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) ListServicesByProvider(ctx context.Context, providerID string) ([]*entity.Service, error) {
	var services []*entity.Service
	if err := c.do(ctx, http.MethodGet, "/services/provider/"+url.PathEscape(providerID), nil, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, req map[string]interface{}) (*entity.Service, error) {
	var service entity.Service
	if err := c.do(ctx, http.MethodPost, "/services", nil, req, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, req map[string]interface{}) (*entity.Service, error) {
	var service entity.Service
	if err := c.do(ctx, http.MethodPut, "/services/"+url.PathEscape(id), nil, req, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil, nil)
}

// Bookings

type CreateBookingRequest struct {
	ProviderID string   `json:"providerId"`
	ServiceID  string   `json:"serviceId,omitempty"`
	EventType  string   `json:"eventType,omitempty"`
	Date       string   `json:"date,omitempty"`
	Dates      []string `json:"dates,omitempty"`
	Time       string   `json:"time,omitempty"`
	GuestCount int      `json:"guestCount,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	TotalPrice float64  `json:"totalPrice,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) ListBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user/"+url.PathEscape(userID), nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ListBookingsByProvider(ctx context.Context, providerID string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/provider/"+url.PathEscape(providerID), nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*entity.Booking, error) {
	var booking entity.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, req map[string]interface{}) (*entity.Booking, error) {
	var booking entity.Booking
	if err := c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id), nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*entity.Booking, error) {
	var booking entity.Booking
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+url.PathEscape(id)+"/status", nil, body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil, nil)
}

// Health

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}
