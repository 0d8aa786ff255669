package scim

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// GroupService handles Group resource API calls
type GroupService struct {
	client       *Client
	resourceType string
}

// List retrieves a single page of groups
func (s *GroupService) List(ctx context.Context, startIndex, count int) (*ListResponse, error) {
	return s.client.listPage(ctx, s.resourceType, startIndex, count)
}

// ListAll retrieves every group the backend reports, page by page
func (s *GroupService) ListAll(ctx context.Context) (*ListResponse, error) {
	return s.client.listAll(ctx, s.resourceType)
}

// Count returns the backend's advertised total without fetching pages
func (s *GroupService) Count(ctx context.Context) (int, error) {
	return s.client.count(ctx, s.resourceType)
}

// Create creates a new group
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*Group, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid group: %w", err)
	}

	payload := Group{
		Schemas:     []string{SchemaCoreGroup},
		ExternalID:  optionalString(req.ExternalID),
		DisplayName: req.DisplayName,
		Meta:        &Meta{ResourceType: "Group"},
	}
	for _, id := range req.MemberIDs {
		payload.Members = append(payload.Members, GroupMember{Value: id})
	}

	var created Group
	if err := s.client.doRequest(ctx, "POST", s.resourceType, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete deletes a group by ID
func (s *GroupService) Delete(ctx context.Context, id string) error {
	return s.client.deleteResource(ctx, s.resourceType, id)
}

// DeleteMany deletes groups sequentially with a pause between requests
func (s *GroupService) DeleteMany(ctx context.Context, ids []string, delay time.Duration) (*DeleteOutcome, error) {
	return s.client.bulkDelete(ctx, s.resourceType, ids, delay)
}

// AddMember adds a user to a group via a SCIM PatchOp.
//
// The value wraps the member id twice; that is the shape this backend
// accepts, not standard SCIM.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID string) error {
	type memberRef struct {
		Value string `json:"value"`
	}
	payload := PatchOp{
		Schemas: []string{SchemaPatchOp},
		Operations: []PatchOperation{
			{
				Op:   "add",
				Path: "members",
				Value: struct {
					Value memberRef `json:"value"`
				}{Value: memberRef{Value: userID}},
			},
		},
	}

	path := fmt.Sprintf("%s/%s", s.resourceType, url.PathEscape(groupID))
	if err := s.client.doRequest(ctx, "PATCH", path, payload, nil); err != nil {
		return fmt.Errorf("failed to add user %s to group %s: %w", userID, groupID, err)
	}
	return nil
}
