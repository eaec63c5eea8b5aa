package http

import "github.com/go-playground/validator/v10"

// RequestValidator plugs go-playground/validator into echo's c.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new RequestValidator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate validates a request DTO using its `validate` struct tags.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
