package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/transport"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startEchoServer runs an in-process WebSocket server echoing every text
// message, and records the Authorization header of the handshake.
func startEchoServer(t *testing.T) (url string, authHeader *string) {
	t.Helper()
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt == websocket.TextMessage {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http"), &auth
}

func testOptions() transport.Options {
	return transport.Options{Logger: logx.NewNilLogger()}
}

func TestDialSendReceive(t *testing.T) {
	url, _ := startEchoServer(t)

	tr, err := Dial(context.Background(), url, testOptions())
	require.NoError(t, err)
	defer tr.Close()

	require.NoError(t, tr.Send([]byte(`{"jsonrpc":"2.0","method":"ping"}`)))

	data, err := tr.Receive()
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"ping"}`, string(data))
}

func TestDialSendsAuthHeader(t *testing.T) {
	url, auth := startEchoServer(t)

	opts := testOptions()
	opts.Header = http.Header{"Authorization": []string{"Bearer token123"}}
	tr, err := Dial(context.Background(), url, opts)
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, "Bearer token123", *auth)
}

func TestSendEmptyMessageRejected(t *testing.T) {
	url, _ := startEchoServer(t)
	tr, err := Dial(context.Background(), url, testOptions())
	require.NoError(t, err)
	defer tr.Close()

	assert.Error(t, tr.Send(nil))
}

func TestReceiveHonorsContext(t *testing.T) {
	url, _ := startEchoServer(t)
	tr, err := Dial(context.Background(), url, testOptions())
	require.NoError(t, err)
	defer tr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = tr.ReceiveWithContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseIsIdempotent(t *testing.T) {
	url, _ := startEchoServer(t)
	tr, err := Dial(context.Background(), url, testOptions())
	require.NoError(t, err)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
	assert.True(t, tr.IsClosed())

	assert.Error(t, tr.Send([]byte("x")))
	_, err = tr.Receive()
	assert.Error(t, err)
}

func TestDialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := Dial(ctx, "ws://127.0.0.1:1/nowhere", testOptions())
	assert.Error(t, err)
}
