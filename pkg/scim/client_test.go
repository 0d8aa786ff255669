package scim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(ListResponse{})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", Token: "secret-token"})
	_, err := c.Users().List(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/scim/Users", gotPath, "trailing base URL slash is trimmed")
	assert.Equal(t, "application/scim+json;charset=utf-8", gotHeaders.Get("Accept"))
	assert.Equal(t, "Bearer secret-token", gotHeaders.Get("Authorization"))
	assert.NotEmpty(t, gotHeaders.Get("X-Request-Id"))
	assert.Empty(t, gotHeaders.Get("Content-Type"), "no content type without a body")
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantInMsg  string
	}{
		{
			name:       "scim error body",
			status:     http.StatusNotFound,
			body:       `{"schemas":["urn:ietf:params:scim:api:messages:2.0:Error"],"scimType":"noTarget","detail":"User not found","status":"404"}`,
			wantDetail: "User not found",
			wantInMsg:  "User not found",
		},
		{
			name:      "plain text body is surfaced",
			status:    http.StatusBadGateway,
			body:      "upstream exploded",
			wantInMsg: "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
			_, err := c.Users().List(context.Background(), 1, 10)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Contains(t, apiErr.Error(), tt.wantInMsg)
		})
	}
}

func TestAPIError_Classification(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).IsNotFound())
	assert.True(t, (&APIError{StatusCode: 401}).IsUnauthorized())
	assert.True(t, (&APIError{StatusCode: 403}).IsForbidden())
	assert.True(t, (&APIError{StatusCode: 400}).IsValidationError())
	assert.True(t, (&APIError{StatusCode: 503}).IsServerError())
	assert.False(t, (&APIError{StatusCode: 404}).IsServerError())
}

func TestClient_ListQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(ListResponse{})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
	_, err := c.Groups().List(context.Background(), 1001, 500)
	require.NoError(t, err)

	assert.Equal(t, []string{"1001"}, gotQuery["startIndex"])
	assert.Equal(t, []string{"500"}, gotQuery["count"])
}
