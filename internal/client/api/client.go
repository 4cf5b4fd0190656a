// Package api is the HTTP client the CLI uses to talk to the server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/pkg/api"
)

// Client is the HTTP client for the server API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken sets the bearer token attached to every request.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns a token pair.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair. The refresh token
// goes in the Authorization header, not the stored access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequestWithToken(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout revokes all refresh tokens of the current session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListParams narrows and orders the client listing. Zero values mean
// no filtering and the server's default order.
type ListParams struct {
	Search    string
	MinRating int
	SortBy    string
	SortOrder string
}

// ListClients fetches clients with their derived last job.
func (c *Client) ListClients(ctx context.Context, params ListParams) ([]models.ClientWithLastJob, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.MinRating > 0 {
		q.Set("rating", strconv.Itoa(params.MinRating))
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		q.Set("sortOrder", params.SortOrder)
	}

	path := "/api/v1/clients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp []models.ClientWithLastJob
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list clients request failed: %w", err)
	}
	return resp, nil
}

// GetClient fetches one client with its full job history.
func (c *Client) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var resp models.Client
	path := "/api/v1/clients/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get client request failed: %w", err)
	}
	return &resp, nil
}

// CreateClient creates a client record.
func (c *Client) CreateClient(ctx context.Context, req api.ClientRequest) (*models.Client, error) {
	var resp models.Client
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/clients", req, &resp); err != nil {
		return nil, fmt.Errorf("create client request failed: %w", err)
	}
	return &resp, nil
}

// UpdateClient replaces a client's fields.
func (c *Client) UpdateClient(ctx context.Context, id string, req api.ClientRequest) (*models.Client, error) {
	var resp models.Client
	path := "/api/v1/clients/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, fmt.Errorf("update client request failed: %w", err)
	}
	return &resp, nil
}

// DeleteClient removes a client and all its jobs.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	var resp api.DeleteResponse
	path := "/api/v1/clients/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return fmt.Errorf("delete client request failed: %w", err)
	}
	return nil
}

// ListJobs fetches jobs joined with their client summary. clientID may be
// empty to fetch all jobs.
func (c *Client) ListJobs(ctx context.Context, clientID string) ([]api.JobResponse, error) {
	path := "/api/v1/jobs"
	if clientID != "" {
		path += "?clientId=" + url.QueryEscape(clientID)
	}

	var resp []api.JobResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list jobs request failed: %w", err)
	}
	return resp, nil
}

// CreateJob records a job for a client.
func (c *Client) CreateJob(ctx context.Context, req api.JobRequest) (*api.JobResponse, error) {
	var resp api.JobResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/jobs", req, &resp); err != nil {
		return nil, fmt.Errorf("create job request failed: %w", err)
	}
	return &resp, nil
}

// DeleteJob removes a job.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	var resp api.DeleteResponse
	path := "/api/v1/jobs/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return fmt.Errorf("delete job request failed: %w", err)
	}
	return nil
}

// DBStatus probes the server's database configuration and connection.
func (c *Client) DBStatus(ctx context.Context) (*api.DBStatusResponse, error) {
	var resp api.DBStatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/db-status", nil, &resp); err != nil {
		return nil, fmt.Errorf("db status request failed: %w", err)
	}
	return &resp, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	return c.doRequestWithToken(ctx, method, path, c.accessToken, body, result)
}

func (c *Client) doRequestWithToken(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
