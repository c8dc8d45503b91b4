package protocol

import "fmt"

// ErrorCode represents a JSON-RPC error code.
type ErrorCode int

// Standard JSON-RPC 2.0 error codes, plus store-specific codes in the
// implementation-defined range.
const (
	ErrorCodeParseError     ErrorCode = -32700
	ErrorCodeInvalidRequest ErrorCode = -32600
	ErrorCodeMethodNotFound ErrorCode = -32601
	ErrorCodeInvalidParams  ErrorCode = -32602
	ErrorCodeInternalError  ErrorCode = -32603

	ErrorCodeUnsupportedProtocol ErrorCode = -32000
	ErrorCodeInvalidURI          ErrorCode = -32001
	ErrorCodeNotFound            ErrorCode = -32002
	ErrorCodeAccessDenied        ErrorCode = -32003
)

// StoreError represents an error reported by the store, carrying the
// JSON-RPC error payload fields. It implements the error interface.
type StoreError struct {
	Code    ErrorCode
	Message string
	Data    interface{}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store error %d: %s", e.Code, e.Message)
}

// NewStoreError creates a StoreError from an ErrorPayload.
func NewStoreError(payload *ErrorPayload) *StoreError {
	if payload == nil {
		return &StoreError{Code: ErrorCodeInternalError, Message: "unknown error"}
	}
	return &StoreError{
		Code:    payload.Code,
		Message: payload.Message,
		Data:    payload.Data,
	}
}
