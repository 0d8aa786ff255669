package scim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// UserService handles User resource API calls
type UserService struct {
	client       *Client
	resourceType string
}

// List retrieves a single page of users
func (s *UserService) List(ctx context.Context, startIndex, count int) (*ListResponse, error) {
	return s.client.listPage(ctx, s.resourceType, startIndex, count)
}

// ListAll retrieves every user the backend reports, page by page
func (s *UserService) ListAll(ctx context.Context) (*ListResponse, error) {
	return s.client.listAll(ctx, s.resourceType)
}

// Count returns the backend's advertised total without fetching pages
func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.client.count(ctx, s.resourceType)
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	payload := User{
		Schemas:    []string{SchemaCoreUser, SchemaEnterpriseUser, SchemaTenantUser},
		ExternalID: optionalString(req.ExternalID),
		UserName:   req.UserName,
		Name: Name{
			GivenName:  req.GivenName,
			FamilyName: req.FamilyName,
		},
		Emails: []Email{{Value: req.Email, Primary: true}},
		Active: true,
		Meta:   &Meta{ResourceType: "User"},
	}

	var created User
	if err := s.client.doRequest(ctx, "POST", s.resourceType, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete deletes a user by ID
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.client.deleteResource(ctx, s.resourceType, id)
}

// DeleteMany deletes users sequentially with a pause between requests
func (s *UserService) DeleteMany(ctx context.Context, ids []string, delay time.Duration) (*DeleteOutcome, error) {
	return s.client.bulkDelete(ctx, s.resourceType, ids, delay)
}

// listPage fetches one page of a resource listing.
func (c *Client) listPage(ctx context.Context, resourceType string, startIndex, count int) (*ListResponse, error) {
	if startIndex < 1 {
		startIndex = 1
	}
	if count <= 0 {
		count = c.pageSize
	}

	query := url.Values{}
	query.Set("startIndex", strconv.Itoa(startIndex))
	query.Set("count", strconv.Itoa(count))

	var page ListResponse
	path := resourceType + "?" + query.Encode()
	if err := c.doRequest(ctx, "GET", path, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", resourceType, err)
	}
	return &page, nil
}

// count asks for a single-item page and reads the advertised total.
func (c *Client) count(ctx context.Context, resourceType string) (int, error) {
	page, err := c.listPage(ctx, resourceType, 1, 1)
	if err != nil {
		return 0, err
	}
	return page.TotalResults, nil
}

// deleteResource deletes one resource by id.
func (c *Client) deleteResource(ctx context.Context, resourceType, id string) error {
	path := fmt.Sprintf("%s/%s", resourceType, url.PathEscape(id))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", resourceType, id, err)
	}
	return nil
}

// optionalString maps the empty string to a JSON null.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
