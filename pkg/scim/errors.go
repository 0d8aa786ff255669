package scim

import (
	"errors"
	"fmt"
)

// ErrBadPageSize reports a listing page advertising a non-positive
// itemsPerPage while more results remain. Advancing by it would never
// terminate, so the whole listing is aborted.
var ErrBadPageSize = errors.New("scim: backend reported non-positive itemsPerPage with results remaining")

// APIError represents an error returned by the SCIM API
type APIError struct {
	StatusCode int      `json:"-"`
	Schemas    []string `json:"schemas,omitempty"`
	ScimType   string   `json:"scimType,omitempty"`
	Detail     string   `json:"detail,omitempty"`
	Body       string   `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		if e.ScimType != "" {
			return fmt.Sprintf("SCIM API error [%s]: %s (status: %d)", e.ScimType, e.Detail, e.StatusCode)
		}
		return fmt.Sprintf("SCIM API error: %s (status: %d)", e.Detail, e.StatusCode)
	}
	if e.Body != "" {
		return fmt.Sprintf("SCIM API error (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("SCIM API error (status %d)", e.StatusCode)
}

// IsNotFound returns true if the error is a 404 not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true if the error is a 401 unauthorized error
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsForbidden returns true if the error is a 403 forbidden error
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == 403
}

// IsValidationError returns true if the error is a 400 validation error
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == 400
}

// IsServerError returns true if the error is a 5xx server error
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
