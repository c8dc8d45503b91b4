package client

import (
	"time"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
	"github.com/meTur4ik/witsml-studio/transport"
)

// Option defines a client configuration option
type Option func(*clientImpl)

// WithLogger sets the logger for the client
func WithLogger(logger logx.Logger) Option {
	return func(c *clientImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAuth sets the authentication provider used when dialing the store.
func WithAuth(auth AuthProvider) Option {
	return func(c *clientImpl) {
		c.auth = auth
	}
}

// WithTransport injects a pre-built transport instead of dialing the URL.
// Mostly useful in tests.
func WithTransport(t transport.Transport) Option {
	return func(c *clientImpl) {
		c.transport = t
	}
}

// WithRequestTimeout sets the timeout for individual requests.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *clientImpl) {
		if timeout > 0 {
			c.requestTimeout = timeout
		}
	}
}

// WithConnectionTimeout sets the timeout for the initial dial.
func WithConnectionTimeout(timeout time.Duration) Option {
	return func(c *clientImpl) {
		if timeout > 0 {
			c.connectionTimeout = timeout
		}
	}
}

// WithRequestedCapabilities overrides the protocol capabilities requested
// during the session handshake.
func WithRequestedCapabilities(caps ...protocol.Capability) Option {
	return func(c *clientImpl) {
		if len(caps) > 0 {
			c.requestedCaps = caps
		}
	}
}

// WithApplicationName sets the application name announced to the store.
func WithApplicationName(name string) Option {
	return func(c *clientImpl) {
		if name != "" {
			c.appName = name
		}
	}
}
