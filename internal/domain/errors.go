// Package domain provides the canonical types shared by every service
// façade: the error taxonomy, the Result union, and the view models.
package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorKind represents the category of an API error.
type ErrorKind string

const (
	// ErrorKindNetwork indicates the request never reached the server.
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindAuth indicates an authentication failure (401).
	ErrorKindAuth ErrorKind = "auth"

	// ErrorKindForbidden indicates a permission failure (403).
	ErrorKindForbidden ErrorKind = "forbidden"

	// ErrorKindNotFound indicates the resource or endpoint is absent (404).
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindServer indicates an upstream 5xx.
	ErrorKindServer ErrorKind = "server"

	// ErrorKindValidation indicates any other 4xx carrying a response body.
	ErrorKindValidation ErrorKind = "validation"
)

// APIError is the canonical error produced by Classify. It is an
// immutable value: nothing downstream mutates it, and no downstream
// code inspects raw transport errors instead of it.
type APIError struct {
	// Kind is the category of error
	Kind ErrorKind `json:"kind"`

	// Status is the HTTP status code, 0 when no response was received
	Status int `json:"status"`

	// Message is the human-readable error message
	Message string `json:"message"`

	// Code is an optional upstream-supplied error code
	Code string `json:"code,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errorBody is the upstream error response shape: {message, code?}.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Classify maps any transport outcome to exactly one APIError. It is
// total: every input produces an error value, it never panics. resp may
// be nil (pure network failure), body may be nil or non-JSON.
func Classify(resp *http.Response, body []byte, err error) *APIError {
	if resp == nil {
		msg := "network error"
		if err != nil {
			msg = err.Error()
		}
		return &APIError{Kind: ErrorKindNetwork, Status: 0, Message: msg}
	}

	var parsed errorBody
	if len(body) > 0 {
		// Best effort; a non-JSON body leaves parsed zero-valued.
		_ = json.Unmarshal(body, &parsed)
	}

	message := parsed.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
	}

	kind := ErrorKindValidation
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		kind = ErrorKindAuth
	case resp.StatusCode == http.StatusForbidden:
		kind = ErrorKindForbidden
	case resp.StatusCode == http.StatusNotFound:
		kind = ErrorKindNotFound
	case resp.StatusCode >= 500:
		kind = ErrorKindServer
	}

	return &APIError{
		Kind:    kind,
		Status:  resp.StatusCode,
		Message: message,
		Code:    parsed.Code,
	}
}

// Convenience constructors for common errors

// ErrNetwork creates a network error (no response reached).
func ErrNetwork(message string) *APIError {
	return &APIError{Kind: ErrorKindNetwork, Status: 0, Message: message}
}

// ErrAuth creates an authentication error.
func ErrAuth(message string) *APIError {
	return &APIError{Kind: ErrorKindAuth, Status: http.StatusUnauthorized, Message: message}
}

// ErrNotFound creates a not found error.
func ErrNotFound(message string) *APIError {
	return &APIError{Kind: ErrorKindNotFound, Status: http.StatusNotFound, Message: message}
}

// ErrServer creates a server error.
func ErrServer(status int, message string) *APIError {
	if status < 500 {
		status = http.StatusInternalServerError
	}
	return &APIError{Kind: ErrorKindServer, Status: status, Message: message}
}

// ErrValidation creates a validation error.
func ErrValidation(status int, message string) *APIError {
	return &APIError{Kind: ErrorKindValidation, Status: status, Message: message}
}

// Fallbackable reports whether an error may be silently substituted
// with mock data: only "endpoint not deployed" (404) and "nothing
// answered at all" (network, status 0) qualify. Every other kind means
// something is actually broken and must surface to the caller.
func Fallbackable(err *APIError) bool {
	if err == nil {
		return false
	}
	if err.Kind == ErrorKindNotFound {
		return true
	}
	return err.Kind == ErrorKindNetwork && err.Status == 0
}
