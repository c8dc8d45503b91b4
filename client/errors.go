package client

import (
	"errors"
	"fmt"
	"time"
)

// Standard error types that can be used with errors.Is()
var (
	ErrNotConnected     = errors.New("client is not connected")
	ErrAlreadyConnected = errors.New("client is already connected")
	ErrRequestTimeout   = errors.New("request timed out")
	ErrTransportFailure = errors.New("transport failure")
	ErrInvalidResponse  = errors.New("invalid response from store")
	ErrSessionRejected  = errors.New("store rejected the session request")
)

// ClientError is the base error type for client errors
type ClientError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ConnectionError indicates a connection issue
type ConnectionError struct {
	ClientError
	Endpoint string
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error (%s): %s", e.Endpoint, e.ClientError.Error())
}

// TimeoutError indicates a timeout
type TimeoutError struct {
	ClientError
	Operation string
	Timeout   time.Duration
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %v during %s: %s", e.Timeout, e.Operation, e.ClientError.Error())
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(endpoint, message string, cause error) error {
	return &ConnectionError{
		ClientError: ClientError{Message: message, Cause: cause},
		Endpoint:    endpoint,
	}
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(operation string, timeout time.Duration) error {
	return &TimeoutError{
		ClientError: ClientError{Message: "operation timed out", Cause: ErrRequestTimeout},
		Operation:   operation,
		Timeout:     timeout,
	}
}

// IsTimeoutError checks if an error is a timeout error
func IsTimeoutError(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr) || errors.Is(err, ErrRequestTimeout)
}

// IsConnectionError checks if an error is a connection error
func IsConnectionError(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr) || errors.Is(err, ErrNotConnected) || errors.Is(err, ErrAlreadyConnected)
}
