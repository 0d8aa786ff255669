package scim

import "github.com/go-playground/validator/v10"

// validate checks create requests before any network call is made.
var validate = validator.New(validator.WithRequiredStructEnabled())
