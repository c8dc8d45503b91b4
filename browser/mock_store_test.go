package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/meTur4ik/witsml-studio/protocol"
)

// mockStore implements StoreSession for testing with scripted responses.
type mockStore struct {
	mu        sync.Mutex
	children  map[string][]protocol.Resource
	childErr  error
	getErr    error
	deleteErr error

	childRequests  []string
	getRequests    []string
	deleteRequests []string

	blockGet chan struct{} // when non-nil, GetObject waits on it or ctx
}

func newMockStore() *mockStore {
	return &mockStore{children: make(map[string][]protocol.Resource)}
}

func (m *mockStore) RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.childRequests = append(m.childRequests, uri)
	if m.childErr != nil {
		return nil, m.childErr
	}
	res, ok := m.children[uri]
	if !ok {
		return nil, fmt.Errorf("no such resource: %s", uri)
	}
	return res, nil
}

func (m *mockStore) GetObject(ctx context.Context, uri string) (string, error) {
	m.mu.Lock()
	block := m.blockGet
	m.getRequests = append(m.getRequests, uri)
	err := m.getErr
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<object uri=%q/>", uri), nil
}

func (m *mockStore) DeleteObject(ctx context.Context, uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteRequests = append(m.deleteRequests, uri)
	return m.deleteErr
}

func (m *mockStore) childRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.childRequests)
}

func (m *mockStore) getRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.getRequests)
}

func (m *mockStore) deleteRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deleteRequests)
}

// mockClipboard records text handed to it.
type mockClipboard struct {
	mu    sync.Mutex
	texts []string
}

func (m *mockClipboard) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
	return nil
}

// mockPanels records panel activations.
type mockPanels struct {
	mu          sync.Mutex
	activations []string // "panelID|uri"
}

func (m *mockPanels) Activate(panelID, contextURI string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activations = append(m.activations, panelID+"|"+contextURI)
}
