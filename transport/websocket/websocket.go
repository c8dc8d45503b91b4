// Package websocket provides a transport.Transport implementation over a
// client-side WebSocket connection using gobwas/ws.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/transport"
)

const defaultWriteTimeout = 30 * time.Second

// messageOrError holds either a received message or an error from the reader goroutine.
type messageOrError struct {
	data []byte
	err  error
}

// Transport implements transport.Transport over a WebSocket connection in
// the client role: outgoing frames are masked, incoming frames must not be.
type Transport struct {
	conn       net.Conn
	logger     logx.Logger
	writeMutex sync.Mutex
	readMutex  sync.Mutex
	closed     bool
	closeMutex sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
}

// Ensure Transport implements transport.Transport
var _ transport.Transport = (*Transport)(nil)

// Dial establishes a WebSocket connection to the given URL and returns a
// Transport over it. The context controls the dial and handshake; headers in
// opts (typically authentication) are sent with the handshake request.
func Dial(ctx context.Context, urlString string, opts transport.Options) (*Transport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}

	dialer := ws.Dialer{}
	if len(opts.Header) > 0 {
		dialer.Header = ws.HandshakeHeaderHTTP(opts.Header)
	}

	logger.Debug("dialing websocket %s", urlString)
	conn, _, _, err := dialer.Dial(ctx, urlString)
	if err != nil {
		return nil, fmt.Errorf("failed to dial websocket %s: %w", urlString, err)
	}

	tctx, cancel := context.WithCancel(context.Background())
	return &Transport{
		conn:   conn,
		logger: logger,
		ctx:    tctx,
		cancel: cancel,
	}, nil
}

// Send writes a complete message to the connection as a masked text frame.
func (t *Transport) Send(data []byte) error {
	if len(data) == 0 {
		return errors.New("cannot send empty message")
	}

	t.closeMutex.Lock()
	if t.closed {
		t.closeMutex.Unlock()
		return errors.New("transport is closed")
	}
	t.closeMutex.Unlock()

	t.writeMutex.Lock()
	defer t.writeMutex.Unlock()

	if err := t.conn.SetWriteDeadline(time.Now().Add(defaultWriteTimeout)); err != nil {
		t.logger.Warn("failed to set write deadline: %v", err)
	}
	err := wsutil.WriteClientMessage(t.conn, ws.OpText, data)
	if resetErr := t.conn.SetWriteDeadline(time.Time{}); resetErr != nil {
		t.logger.Warn("failed to reset write deadline: %v", resetErr)
	}
	if err != nil {
		_ = t.Close()
		return fmt.Errorf("failed to write websocket message: %w", err)
	}
	return nil
}

// Receive blocks until the next text message arrives.
func (t *Transport) Receive() ([]byte, error) {
	return t.ReceiveWithContext(context.Background())
}

// ReceiveWithContext reads the next text message, honoring context
// cancellation while waiting. Control frames (ping/pong) are handled
// internally by the frame reader.
func (t *Transport) ReceiveWithContext(ctx context.Context) ([]byte, error) {
	t.closeMutex.Lock()
	if t.closed {
		t.closeMutex.Unlock()
		return nil, errors.New("transport is closed")
	}
	t.closeMutex.Unlock()

	msgChan := make(chan messageOrError, 1)
	go func() {
		t.readMutex.Lock()
		defer t.readMutex.Unlock()
		data, err := wsutil.ReadServerText(t.conn)
		msgChan <- messageOrError{data: data, err: err}
	}()

	var data []byte
	var err error
	select {
	case <-ctx.Done():
		// The read goroutine stays parked on the connection; closing the
		// transport is the only way to release it.
		go t.Close()
		return nil, ctx.Err()
	case <-t.ctx.Done():
		return nil, errors.New("transport closed")
	case msg := <-msgChan:
		data = msg.data
		err = msg.err
	}

	if err != nil {
		t.closeMutex.Lock()
		wasClosed := t.closed
		t.closeMutex.Unlock()
		if !wasClosed {
			go t.Close()
		}

		var closeErr wsutil.ClosedError
		if errors.As(err, &closeErr) {
			return nil, fmt.Errorf("websocket closed by peer with code %d: %w", closeErr.Code, err)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return nil, fmt.Errorf("websocket connection closed: %w", err)
		}
		return nil, fmt.Errorf("websocket read error: %w", err)
	}
	return data, nil
}

// Close terminates the transport connection, sending a close frame best
// effort before dropping the underlying connection.
func (t *Transport) Close() error {
	t.closeMutex.Lock()
	if t.closed {
		t.closeMutex.Unlock()
		return nil
	}
	t.closed = true
	t.closeMutex.Unlock()

	t.cancel()

	t.writeMutex.Lock()
	if err := t.conn.SetWriteDeadline(time.Now().Add(2 * time.Second)); err == nil {
		payload := ws.NewCloseFrameBody(ws.StatusNormalClosure, "")
		if err := wsutil.WriteClientMessage(t.conn, ws.OpClose, payload); err != nil {
			t.logger.Debug("failed to write close frame: %v", err)
		}
	}
	t.writeMutex.Unlock()

	if err := t.conn.Close(); err != nil {
		t.logger.Debug("error closing underlying connection: %v", err)
	}
	return nil
}

// IsClosed returns true if the transport connection is closed.
func (t *Transport) IsClosed() bool {
	t.closeMutex.Lock()
	defer t.closeMutex.Unlock()
	return t.closed
}

// RemoteAddr returns the remote network address.
func (t *Transport) RemoteAddr() net.Addr { return t.conn.RemoteAddr() }
