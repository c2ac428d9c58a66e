package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("session expired or missing")
)

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s %s", f.Field, f.Msg)
}

// ValidationError is raised before anything reaches the network.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Msg: msg}}}
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// APIError is a non-success answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
	Path    string
	Time    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound || e.Code == "NOT_FOUND"
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Code == "UNAUTHORIZED"
	}
	return false
}

// NetworkError wraps transport failures where no response body was read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Message returns the text a user should see for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Unknown server error"
	}
	return err.Error()
}
