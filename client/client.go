// Package client provides the client-side implementation of the witsml-studio
// store protocol: it dials the store over WebSocket, negotiates a session and
// its capabilities, and exposes the discovery, store and channel operations
// the browser coordinator delegates to.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
	"github.com/meTur4ik/witsml-studio/transport"
	"github.com/meTur4ik/witsml-studio/transport/websocket"
)

// Client is the interface for a single store session connection.
type Client interface {
	// Connection Management
	Connect(ctx context.Context) error
	Close() error
	IsConnected() bool

	// Store Methods - High-level API
	RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error)
	GetObject(ctx context.Context, uri string) (string, error)
	DeleteObject(ctx context.Context, uri string) error
	DescribeChannels(ctx context.Context, uri string) ([]protocol.ChannelMetadataRecord, error)
	Ping(ctx context.Context) error

	// Session Information
	SessionID() string
	Capabilities() protocol.CapabilitySet

	// Session event registration
	OnSessionOpened(handler func(protocol.CapabilitySet)) Client
	OnSessionClosed(handler func()) Client
}

// clientImpl implements the Client interface
type clientImpl struct {
	url     string
	logger  logx.Logger
	auth    AuthProvider
	appName string

	requestedCaps     []protocol.Capability
	connectionTimeout time.Duration
	requestTimeout    time.Duration

	// connectMu serializes Connect/Close; transportMu guards the transport
	// pointer itself so the receive loop and in-flight calls can read it
	// while a Connect is still finishing the handshake.
	transport   transport.Transport
	transportMu sync.RWMutex
	connected   bool
	connectMu   sync.Mutex

	sessionID string
	caps      protocol.CapabilitySet
	sessionMu sync.RWMutex

	// Request tracking
	pendingRequests   map[string]chan *protocol.JSONRPCResponse
	pendingRequestsMu sync.Mutex

	openedHandlers []func(protocol.CapabilitySet)
	closedHandlers []func()
	handlersMu     sync.Mutex

	// Shutdown signaling; recreated on each Connect
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a client for the store at the given WebSocket URL.
func NewClient(url string, options ...Option) Client {
	c := &clientImpl{
		url:               url,
		logger:            logx.NewDefaultLogger(),
		appName:           "witsml-studio",
		requestedCaps:     protocol.DefaultCapabilities,
		connectionTimeout: 30 * time.Second,
		requestTimeout:    30 * time.Second,
		pendingRequests:   make(map[string]chan *protocol.JSONRPCResponse),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Connect dials the store and performs the session handshake. After a
// successful handshake the session-opened handlers fire with the granted
// capability set.
func (c *clientImpl) Connect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.connected {
		return ErrAlreadyConnected
	}

	c.warnExpiredCredential()

	if c.currentTransport() == nil {
		header := http.Header{}
		if c.auth != nil {
			for k, v := range c.auth.Headers() {
				header.Set(k, v)
			}
		}
		dialCtx, cancel := context.WithTimeout(ctx, c.connectionTimeout)
		defer cancel()
		t, err := websocket.Dial(dialCtx, c.url, transport.Options{
			Logger: c.logger,
			Header: header,
		})
		if err != nil {
			return NewConnectionError(c.url, "failed to connect to store", err)
		}
		c.setTransport(t)
	}

	c.connected = true
	c.done = make(chan struct{})
	c.closeOnce = sync.Once{}
	go c.receiveLoop()

	if err := c.requestSession(ctx); err != nil {
		c.connected = false
		if t := c.currentTransport(); t != nil {
			_ = t.Close()
		}
		c.setTransport(nil)
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	return nil
}

// requestSession performs the capability negotiation with the store.
func (c *clientImpl) requestSession(ctx context.Context) error {
	resp, err := c.call(ctx, protocol.MethodRequestSession, protocol.RequestSessionParams{
		ApplicationName:     c.appName,
		ApplicationVersion:  "1.0.0",
		RequestedProtocols:  c.requestedCaps,
		SupportedDataFormat: "json",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionRejected, err)
	}

	var result protocol.RequestSessionResult
	if err := protocol.UnmarshalPayload(resp.Result, &result); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if result.SessionID == "" {
		return fmt.Errorf("%w: store did not provide a session id", ErrInvalidResponse)
	}

	c.sessionMu.Lock()
	c.sessionID = result.SessionID
	c.caps = result.SupportedProtocols
	caps := c.caps
	c.sessionMu.Unlock()

	c.logger.Info("session %s opened with store %s, protocols: %v",
		result.SessionID, c.url, caps.List())

	for _, h := range c.cloneOpenedHandlers() {
		h(caps)
	}
	return nil
}

// Close closes the session and the underlying transport. The session-closed
// handlers fire exactly once per session.
func (c *clientImpl) Close() error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if !c.connected {
		return nil
	}

	t := c.currentTransport()

	// Tell the store we are leaving, best effort.
	if data, err := json.Marshal(protocol.NewNotification(protocol.MethodCloseSession, nil)); err == nil {
		if err := t.Send(data); err != nil {
			c.logger.Debug("failed to send session close notification: %v", err)
		}
	}

	err := t.Close()
	c.setTransport(nil)
	c.connected = false
	c.markSessionClosed()
	return err
}

// IsConnected reports whether a session is currently open. A session that
// the store tore down remotely counts as closed even before Close is called.
func (c *clientImpl) IsConnected() bool {
	c.connectMu.Lock()
	connected := c.connected
	c.connectMu.Unlock()
	return connected && c.SessionID() != ""
}

// SessionID returns the identifier the store assigned to this session.
func (c *clientImpl) SessionID() string {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.sessionID
}

// Capabilities returns the protocol capabilities granted during negotiation.
func (c *clientImpl) Capabilities() protocol.CapabilitySet {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.caps
}

// OnSessionOpened registers a handler for session-opened events.
func (c *clientImpl) OnSessionOpened(handler func(protocol.CapabilitySet)) Client {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.openedHandlers = append(c.openedHandlers, handler)
	return c
}

// OnSessionClosed registers a handler for session-closed events.
func (c *clientImpl) OnSessionClosed(handler func()) Client {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.closedHandlers = append(c.closedHandlers, handler)
	return c
}

// receiveLoop reads messages until the transport fails or closes.
func (c *clientImpl) receiveLoop() {
	t := c.currentTransport()
	if t == nil {
		return
	}
	for {
		data, err := t.Receive()
		if err != nil {
			c.logger.Debug("receive loop ending: %v", err)
			c.handleDisconnect()
			return
		}
		c.handleMessage(data)
	}
}

// handleMessage routes one incoming message: responses to their pending
// request, notifications to the session handlers.
func (c *clientImpl) handleMessage(data []byte) {
	var base struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      interface{}     `json:"id,omitempty"`
		Method  string          `json:"method,omitempty"`
		Result  json.RawMessage `json:"result,omitempty"`
		Error   json.RawMessage `json:"error,omitempty"`
	}
	if err := json.Unmarshal(data, &base); err != nil {
		c.logger.Error("failed to parse store message: %v", err)
		return
	}

	switch {
	case base.ID != nil && base.Method == "":
		var resp protocol.JSONRPCResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			c.logger.Error("failed to parse store response: %v", err)
			return
		}
		c.routeResponse(&resp)
	case base.Method != "" && base.ID == nil:
		c.handleNotification(base.Method, data)
	default:
		// A store-to-client request; this client serves none.
		resp := protocol.NewErrorResponse(base.ID, protocol.ErrorCodeMethodNotFound, "Method not found", nil)
		if data, err := json.Marshal(resp); err == nil {
			if t := c.currentTransport(); t != nil {
				if err := t.Send(data); err != nil {
					c.logger.Debug("failed to send error response: %v", err)
				}
			}
		}
	}
}

func (c *clientImpl) handleNotification(method string, data []byte) {
	switch method {
	case protocol.MethodNotifySessionClosed:
		c.logger.Info("store closed the session")
		c.handleDisconnect()
	default:
		c.logger.Debug("received notification: %s", method)
	}
}

func (c *clientImpl) routeResponse(resp *protocol.JSONRPCResponse) {
	key := fmt.Sprintf("%v", resp.ID)
	c.pendingRequestsMu.Lock()
	ch, ok := c.pendingRequests[key]
	delete(c.pendingRequests, key)
	c.pendingRequestsMu.Unlock()
	if !ok {
		c.logger.Warn("response for unknown request id %s", key)
		return
	}
	ch <- resp
}

// handleDisconnect tears the session down once, whatever ended it.
func (c *clientImpl) handleDisconnect() {
	c.closeOnce.Do(func() {
		c.sessionMu.Lock()
		c.sessionID = ""
		c.caps = nil
		c.sessionMu.Unlock()

		if c.done != nil {
			close(c.done)
		}
		for _, h := range c.cloneClosedHandlers() {
			h()
		}
	})
}

// markSessionClosed is handleDisconnect for the explicit Close path; the
// connect mutex is already held.
func (c *clientImpl) markSessionClosed() {
	c.handleDisconnect()
}

func (c *clientImpl) currentTransport() transport.Transport {
	c.transportMu.RLock()
	defer c.transportMu.RUnlock()
	return c.transport
}

func (c *clientImpl) setTransport(t transport.Transport) {
	c.transportMu.Lock()
	defer c.transportMu.Unlock()
	c.transport = t
}

func (c *clientImpl) cloneOpenedHandlers() []func(protocol.CapabilitySet) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	out := make([]func(protocol.CapabilitySet), len(c.openedHandlers))
	copy(out, c.openedHandlers)
	return out
}

func (c *clientImpl) cloneClosedHandlers() []func() {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	out := make([]func(), len(c.closedHandlers))
	copy(out, c.closedHandlers)
	return out
}

func (c *clientImpl) warnExpiredCredential() {
	reporter, ok := c.auth.(expiryReporter)
	if !ok {
		return
	}
	if expiry, ok := reporter.Expiry(); ok && time.Now().After(expiry) {
		c.logger.Warn("auth token expired at %s; the store will likely reject the session", expiry)
	}
}

// generateRequestID returns a unique id for request correlation.
func generateRequestID() string {
	return uuid.NewString()
}
