package scim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paginatedBackend serves a synthetic Users listing with the given
// total, handing out at most perPage resources per request and
// recording every requested startIndex.
func paginatedBackend(t *testing.T, total, perPage int, startIndexes *[]int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/scim/Users", func(w http.ResponseWriter, r *http.Request) {
		start, err := strconv.Atoi(r.URL.Query().Get("startIndex"))
		require.NoError(t, err)
		*startIndexes = append(*startIndexes, start)

		remaining := total - start + 1
		if remaining < 0 {
			remaining = 0
		}
		n := perPage
		if remaining < n {
			n = remaining
		}

		resources := make([]json.RawMessage, 0, n)
		for i := 0; i < n; i++ {
			resources = append(resources, json.RawMessage(
				fmt.Sprintf(`{"id":"user-%d","userName":"user%d"}`, start+i, start+i)))
		}

		w.Header().Set("Content-Type", "application/scim+json;charset=utf-8")
		json.NewEncoder(w).Encode(ListResponse{
			Schemas:      []string{"urn:ietf:params:scim:api:messages:2.0:ListResponse"},
			TotalResults: total,
			ItemsPerPage: n,
			StartIndex:   start,
			Resources:    resources,
		})
	})

	return httptest.NewServer(mux)
}

func TestListAll_Pagination(t *testing.T) {
	tests := []struct {
		name             string
		total            int
		perPage          int
		wantStartIndexes []int
	}{
		{
			name:             "single page",
			total:            10,
			perPage:          1000,
			wantStartIndexes: []int{1},
		},
		{
			name:             "exact page boundary",
			total:            2000,
			perPage:          1000,
			wantStartIndexes: []int{1, 1001},
		},
		{
			name:             "partial last page",
			total:            2500,
			perPage:          1000,
			wantStartIndexes: []int{1, 1001, 2001},
		},
		{
			name:             "empty collection",
			total:            0,
			perPage:          1000,
			wantStartIndexes: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var startIndexes []int
			srv := paginatedBackend(t, tt.total, tt.perPage, &startIndexes)
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
			list, err := c.Users().ListAll(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantStartIndexes, startIndexes)
			assert.Len(t, list.Resources, tt.total)
			assert.Equal(t, tt.total, list.TotalResults)
			assert.Equal(t, len(list.Resources), list.ItemsPerPage)
			assert.Equal(t, 1, list.StartIndex)
		})
	}
}

func TestListAll_PreservesFetchOrder(t *testing.T) {
	var startIndexes []int
	srv := paginatedBackend(t, 12, 5, &startIndexes)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "tok", PageSize: 5})
	list, err := c.Users().ListAll(context.Background())
	require.NoError(t, err)

	ids, err := list.ResourceIDs()
	require.NoError(t, err)
	require.Len(t, ids, 12)
	for i, id := range ids {
		assert.Equal(t, fmt.Sprintf("user-%d", i+1), id)
	}
}

func TestListAll_BadPageSizeDoesNotLoop(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(ListResponse{
				TotalResults: 10,
				ItemsPerPage: 0,
				StartIndex:   1,
			})
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
		_, err := c.Users().ListAll(context.Background())
		require.ErrorIs(t, err, ErrBadPageSize)
	})

	t.Run("later page", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			page := ListResponse{
				TotalResults: 10,
				ItemsPerPage: 5,
				StartIndex:   1,
				Resources:    make([]json.RawMessage, 5),
			}
			for i := range page.Resources {
				page.Resources[i] = json.RawMessage(`{"id":"x"}`)
			}
			if calls > 1 {
				page.ItemsPerPage = 0
				page.Resources = nil
			}
			json.NewEncoder(w).Encode(page)
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
		_, err := c.Users().ListAll(context.Background())
		require.ErrorIs(t, err, ErrBadPageSize)
		assert.Equal(t, 2, calls)
	})
}

func TestListAll_AbortsOnHTTPError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, `{"detail":"backend unavailable"}`, http.StatusInternalServerError)
			return
		}
		page := ListResponse{
			TotalResults: 10,
			ItemsPerPage: 5,
			StartIndex:   1,
			Resources:    make([]json.RawMessage, 5),
		}
		for i := range page.Resources {
			page.Resources[i] = json.RawMessage(`{"id":"x"}`)
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "tok"})
	list, err := c.Users().ListAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, list, "no partial result on mid-listing failure")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsServerError())
}
