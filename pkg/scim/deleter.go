package scim

import (
	"context"
	"time"
)

// DeleteResult records the outcome of one deletion
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DeleteOutcome holds per-identifier deletion results, in the order
// the identifiers were processed
type DeleteOutcome struct {
	Results []DeleteResult `json:"results"`
}

// Succeeded returns the number of successful deletions
func (o *DeleteOutcome) Succeeded() int {
	n := 0
	for _, r := range o.Results {
		if r.Deleted {
			n++
		}
	}
	return n
}

// Failed returns the number of failed deletions
func (o *DeleteOutcome) Failed() int {
	return len(o.Results) - o.Succeeded()
}

// AsMap returns the outcome as an id-to-success mapping
func (o *DeleteOutcome) AsMap() map[string]bool {
	m := make(map[string]bool, len(o.Results))
	for _, r := range o.Results {
		m[r.ID] = r.Deleted
	}
	return m
}

// bulkDelete deletes the given resources one at a time, pausing delay
// between requests to respect backend rate limits. One identifier
// failing does not stop the rest; each failure is logged and recorded.
// Cancelling the context aborts the remaining deletions.
func (c *Client) bulkDelete(ctx context.Context, resourceType string, ids []string, delay time.Duration) (*DeleteOutcome, error) {
	if delay < 0 {
		delay = c.deleteDelay
	}

	outcome := &DeleteOutcome{Results: make([]DeleteResult, 0, len(ids))}
	total := len(ids)

	for i, id := range ids {
		if i > 0 {
			// No pause after the last request either: the sleep
			// precedes every deletion except the first.
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return outcome, ctx.Err()
			}
		}

		c.log.Info().
			Str("type", resourceType).
			Str("id", id).
			Int("current", i+1).
			Int("total", total).
			Msg("deleting resource")

		err := c.deleteResource(ctx, resourceType, id)
		if err != nil {
			if ctx.Err() != nil {
				return outcome, ctx.Err()
			}
			c.log.Error().
				Err(err).
				Str("type", resourceType).
				Str("id", id).
				Msg("deletion failed")
		}
		outcome.Results = append(outcome.Results, DeleteResult{ID: id, Deleted: err == nil})
	}

	return outcome, nil
}
