package scim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// scimMediaType is the media type SCIM 2.0 endpoints speak.
	scimMediaType = "application/scim+json;charset=utf-8"

	// basePath prefixes every resource path on the backend.
	basePath = "/api/v2/scim/"

	// DefaultPageSize is the count requested per listing page.
	DefaultPageSize = 1000

	// DefaultDeleteDelay is the pause between sequential bulk deletes.
	DefaultDeleteDelay = 500 * time.Millisecond
)

// Client is the SCIM API client
type Client struct {
	baseURL     string
	httpClient  *http.Client
	token       string
	pageSize    int
	deleteDelay time.Duration
	log         zerolog.Logger
}

// Config holds the client configuration
type Config struct {
	BaseURL     string        // API base URL (e.g., "https://idp.example.com")
	Token       string        // Bearer token for authentication
	Timeout     time.Duration // HTTP client timeout (default: 30s)
	PageSize    int           // Listing page size (default: 1000)
	DeleteDelay time.Duration // Pause between bulk delete requests (default: 500ms)
	HTTPClient  *http.Client  // Optional custom HTTP client
	Logger      *zerolog.Logger
}

// NewClient creates a new SCIM API client
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.DeleteDelay <= 0 {
		cfg.DeleteDelay = DefaultDeleteDelay
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		token:       cfg.Token,
		pageSize:    cfg.PageSize,
		deleteDelay: cfg.DeleteDelay,
		log:         log,
	}
}

// SetToken sets the bearer token for authenticated requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest performs an HTTP request with proper error handling
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + basePath + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", scimMediaType)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", scimMediaType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
		// SCIM error bodies carry detail/scimType; anything else is
		// surfaced verbatim through Body.
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Users returns the user management service
func (c *Client) Users() *UserService {
	return &UserService{client: c, resourceType: ResourceTypeUsers}
}

// Groups returns the group management service
func (c *Client) Groups() *GroupService {
	return &GroupService{client: c, resourceType: ResourceTypeGroups}
}
