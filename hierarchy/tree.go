package hierarchy

import (
	"context"
	"sync"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
)

// ChildSource supplies one level of children for an address. It is the
// discovery collaborator the tree queries on lazy loads; implementations
// round-trip to the store.
type ChildSource interface {
	RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error)
}

// loadCall tracks one outstanding child load so concurrent requests for the
// same node share a single round trip.
type loadCall struct {
	done chan struct{}
	err  error
}

// Tree owns the root set of nodes and the current selection.
//
// Structural mutation is guarded by an internal mutex: loads for distinct
// nodes may run concurrently, while a second load for a node with a load
// already outstanding coalesces onto the first rather than issuing another
// request.
type Tree struct {
	mu       sync.Mutex
	source   ChildSource
	logger   logx.Logger
	roots    []*Node
	selected *Node
	inflight map[*Node]*loadCall
}

// NewTree creates an empty tree backed by the given child source.
func NewTree(source ChildSource, logger logx.Logger) *Tree {
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}
	return &Tree{
		source:   source,
		logger:   logger,
		inflight: make(map[*Node]*loadCall),
	}
}

// SetRoots replaces the root set wholesale from a discovery response and
// clears the selection.
func (t *Tree) SetRoots(resources []protocol.Resource) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roots = buildNodes(resources, 0)
	t.selected = nil
}

// Roots returns the current root nodes in discovery order.
func (t *Tree) Roots() []*Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roots
}

// Select marks the given node as selected. Passing nil clears the selection.
func (t *Tree) Select(node *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selected = node
}

// Selected returns the currently selected node, or nil when nothing is
// selected or the selected node has been discarded by a reload.
func (t *Tree) Selected() *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.selected == nil || !t.containsLocked(t.selected) {
		return nil
	}
	return t.selected
}

// Contains reports whether the node is still part of the tree. Dispatch
// paths use it to re-validate a selection before acting on it.
func (t *Tree) Contains(node *Node) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.containsLocked(node)
}

func (t *Tree) containsLocked(node *Node) bool {
	var walk func(nodes []*Node) bool
	walk = func(nodes []*Node) bool {
		for _, n := range nodes {
			if n == node || walk(n.children) {
				return true
			}
		}
		return false
	}
	return walk(t.roots)
}

// LoadChildren queries the child source for one level of children of the
// node, replacing any previously loaded children on success. On failure the
// node's prior children and flags are left untouched.
//
// If a load for the same node is already outstanding, the call waits for
// that load and shares its outcome instead of issuing a second request.
func (t *Tree) LoadChildren(ctx context.Context, node *Node) error {
	t.mu.Lock()
	if call, ok := t.inflight[node]; ok {
		t.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &loadCall{done: make(chan struct{})}
	t.inflight[node] = call
	uri := node.uri.Raw
	t.mu.Unlock()

	resources, err := t.source.RequestChildren(ctx, uri)

	t.mu.Lock()
	delete(t.inflight, node)
	if err != nil {
		t.logger.Warn("child load failed for %s: %v", uri, err)
		call.err = err
	} else {
		node.setChildren(buildNodes(resources, node.level+1))
		t.logger.Debug("loaded %d children for %s", len(resources), uri)
	}
	t.mu.Unlock()

	close(call.done)
	return call.err
}

// ClearAndLoadChildren drops the node's current children synchronously and
// then reloads them, so a partially failed reload never shows stale and new
// children mixed.
func (t *Tree) ClearAndLoadChildren(ctx context.Context, node *Node) error {
	t.mu.Lock()
	if _, busy := t.inflight[node]; !busy {
		node.clearChildren()
	}
	t.mu.Unlock()
	return t.LoadChildren(ctx, node)
}

// Expand marks the node expanded without loading anything.
func (t *Tree) Expand(node *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	node.expanded = true
}

// Collapse marks the node collapsed; its loaded children are kept.
func (t *Tree) Collapse(node *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	node.expanded = false
}

func buildNodes(resources []protocol.Resource, level int) []*Node {
	nodes := make([]*Node, 0, len(resources))
	for _, res := range resources {
		nodes = append(nodes, newNode(res, level))
	}
	return nodes
}
