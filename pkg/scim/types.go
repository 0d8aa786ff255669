package scim

import "encoding/json"

// SCIM schema URNs used in request payloads.
const (
	SchemaCoreUser       = "urn:ietf:params:scim:schemas:core:2.0:User"
	SchemaEnterpriseUser = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"
	SchemaTenantUser     = "urn:ietf:params:scim:schemas:extension:tenant:2.0:User"
	SchemaCoreGroup      = "urn:ietf:params:scim:schemas:core:2.0:Group"
	SchemaPatchOp        = "urn:ietf:params:scim:api:messages:2.0:PatchOp"
)

// Resource types addressable on the backend.
const (
	ResourceTypeUsers  = "Users"
	ResourceTypeGroups = "Groups"
)

// ListResponse is one page of a SCIM listing, or the aggregation of
// all pages once ListAll has run. Resources stay opaque so the full
// backend payload round-trips to JSON output untouched.
type ListResponse struct {
	Schemas      []string          `json:"schemas"`
	TotalResults int               `json:"totalResults"`
	ItemsPerPage int               `json:"itemsPerPage"`
	StartIndex   int               `json:"startIndex"`
	Resources    []json.RawMessage `json:"Resources"`
}

// Users decodes every resource in the response as a SCIM User.
func (l *ListResponse) Users() ([]User, error) {
	users := make([]User, 0, len(l.Resources))
	for _, raw := range l.Resources {
		var u User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Groups decodes every resource in the response as a SCIM Group.
func (l *ListResponse) Groups() ([]Group, error) {
	groups := make([]Group, 0, len(l.Resources))
	for _, raw := range l.Resources {
		var g Group
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ResourceIDs extracts the id of every resource, in listing order.
func (l *ListResponse) ResourceIDs() ([]string, error) {
	ids := make([]string, 0, len(l.Resources))
	for _, raw := range l.Resources {
		var r struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// Meta is the SCIM resource metadata block
type Meta struct {
	ResourceType string `json:"resourceType,omitempty"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Name is the SCIM user name component
type Name struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
}

// Email is a SCIM email entry
type Email struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary,omitempty"`
}

// User represents a SCIM User resource
type User struct {
	Schemas    []string `json:"schemas,omitempty"`
	ID         string   `json:"id,omitempty"`
	ExternalID *string  `json:"externalId"`
	UserName   string   `json:"userName"`
	Name       Name     `json:"name"`
	Emails     []Email  `json:"emails"`
	Active     bool     `json:"active"`
	Meta       *Meta    `json:"meta,omitempty"`
}

// PrimaryEmail returns the first email value, or empty when none exist.
func (u *User) PrimaryEmail() string {
	for _, e := range u.Emails {
		if e.Primary {
			return e.Value
		}
	}
	if len(u.Emails) > 0 {
		return u.Emails[0].Value
	}
	return ""
}

// GroupMember is one member entry of a SCIM Group resource
type GroupMember struct {
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
}

// Group represents a SCIM Group resource
type Group struct {
	Schemas     []string      `json:"schemas,omitempty"`
	ID          string        `json:"id,omitempty"`
	ExternalID  *string       `json:"externalId"`
	DisplayName string        `json:"displayName"`
	Members     []GroupMember `json:"members,omitempty"`
	Meta        *Meta         `json:"meta,omitempty"`
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	UserName   string `validate:"required"`
	Email      string `validate:"required,email"`
	GivenName  string `validate:"required"`
	FamilyName string `validate:"required"`
	ExternalID string
}

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	DisplayName string `validate:"required"`
	ExternalID  string
	MemberIDs   []string
}

// PatchOperation is one add/remove/replace entry of a SCIM PatchOp
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// PatchOp is the SCIM partial-update request body
type PatchOp struct {
	Schemas    []string         `json:"schemas"`
	Operations []PatchOperation `json:"Operations"`
}
