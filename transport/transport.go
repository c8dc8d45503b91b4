// Package transport defines the interface for communication between the
// witsml-studio client and a store, abstracting the underlying mechanism.
package transport

import (
	"context"
	"net/http"

	"github.com/meTur4ik/witsml-studio/logx"
)

// Transport moves complete protocol messages between client and store.
type Transport interface {
	// Send transmits a message over the transport.
	// It returns an error if the message could not be sent.
	Send(data []byte) error

	// Receive blocks until a message is received or an error occurs.
	Receive() ([]byte, error)

	// ReceiveWithContext is like Receive but respects the provided context,
	// allowing cancellation and timeouts while waiting for messages.
	ReceiveWithContext(ctx context.Context) ([]byte, error)

	// Close terminates the transport connection. After Close is called, the
	// transport should not be used.
	Close() error
}

// Options contains configuration options for creating a Transport.
// Different transport implementations may use different fields.
type Options struct {
	// Logger is used for logging transport-related events.
	Logger logx.Logger

	// Header carries extra HTTP headers for the opening handshake,
	// typically authentication.
	Header http.Header

	// Custom options can be provided as key-value pairs.
	Custom map[string]interface{}
}
