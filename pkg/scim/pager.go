package scim

import (
	"context"
	"encoding/json"
	"fmt"
)

// listAll aggregates every page of a resource listing into one
// ListResponse. Page order is whatever the backend returns; resources
// are never re-sorted. Any transport error or non-2xx status aborts
// the whole listing with no partial result.
func (c *Client) listAll(ctx context.Context, resourceType string) (*ListResponse, error) {
	first, err := c.listPage(ctx, resourceType, 1, c.pageSize)
	if err != nil {
		return nil, err
	}

	total := first.TotalResults
	c.log.Info().
		Str("type", resourceType).
		Int("total", total).
		Msg("fetching all pages")

	all := append([]json.RawMessage(nil), first.Resources...)

	stride := first.ItemsPerPage
	startIndex := stride + 1
	for startIndex <= total {
		if stride <= 0 {
			return nil, fmt.Errorf("listing %s at index %d: %w", resourceType, startIndex, ErrBadPageSize)
		}

		c.log.Debug().
			Str("type", resourceType).
			Int("startIndex", startIndex).
			Msg("fetching page")

		page, err := c.listPage(ctx, resourceType, startIndex, c.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Resources...)

		stride = page.ItemsPerPage
		startIndex += stride
	}

	return &ListResponse{
		Schemas:      first.Schemas,
		TotalResults: total,
		ItemsPerPage: len(all),
		StartIndex:   1,
		Resources:    all,
	}, nil
}
