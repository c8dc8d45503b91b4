package hierarchy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
)

// fakeSource implements ChildSource with scripted responses per URI.
type fakeSource struct {
	mu        sync.Mutex
	responses map[string][]protocol.Resource
	err       error
	calls     int32
	block     chan struct{} // when non-nil, RequestChildren waits on it
}

func (f *fakeSource) RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[uri], nil
}

func (f *fakeSource) callCount() int { return int(atomic.LoadInt32(&f.calls)) }

func res(uri, name string) protocol.Resource {
	return protocol.Resource{URI: uri, Name: name, HasChildren: true}
}

func newTestTree(source ChildSource) *Tree {
	return NewTree(source, logx.NewNilLogger())
}

func TestSetRootsReplacesAndClearsSelection(t *testing.T) {
	tree := newTestTree(&fakeSource{})
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "WITSML 1.4 Store")})

	roots := tree.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, 0, roots[0].Level())
	assert.True(t, roots[0].URI().IsBaseURI)

	tree.Select(roots[0])
	require.NotNil(t, tree.Selected())

	tree.SetRoots([]protocol.Resource{res("eml://witsml20", "WITSML 2.0 Store")})
	assert.Nil(t, tree.Selected(), "selection must not survive a root replacement")
}

func TestLoadChildrenReplacesNotMerges(t *testing.T) {
	source := &fakeSource{responses: map[string][]protocol.Resource{
		"eml://witsml14": {res("eml://witsml14/well(a)", "A"), res("eml://witsml14/well(b)", "B")},
	}}
	tree := newTestTree(source)
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]

	require.NoError(t, tree.LoadChildren(context.Background(), root))
	require.Len(t, root.Children(), 2)
	assert.True(t, root.ChildrenLoaded())
	assert.True(t, root.Expanded())
	assert.Equal(t, 1, root.Children()[0].Level())

	// A reload that returns a different set fully replaces the old one.
	source.mu.Lock()
	source.responses["eml://witsml14"] = []protocol.Resource{res("eml://witsml14/well(c)", "C")}
	source.mu.Unlock()

	require.NoError(t, tree.LoadChildren(context.Background(), root))
	require.Len(t, root.Children(), 1)
	assert.Equal(t, "C", root.Children()[0].Name())
}

func TestLoadChildrenFailureLeavesStateIntact(t *testing.T) {
	source := &fakeSource{responses: map[string][]protocol.Resource{
		"eml://witsml14": {res("eml://witsml14/well(a)", "A")},
	}}
	tree := newTestTree(source)
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]

	require.NoError(t, tree.LoadChildren(context.Background(), root))
	require.Len(t, root.Children(), 1)

	source.mu.Lock()
	source.err = errors.New("transport failure")
	source.mu.Unlock()

	err := tree.LoadChildren(context.Background(), root)
	assert.Error(t, err)
	assert.Len(t, root.Children(), 1, "failed reload must not discard prior children")
	assert.True(t, root.ChildrenLoaded())
}

func TestClearAndLoadChildrenNeverMixesStaleAndNew(t *testing.T) {
	source := &fakeSource{responses: map[string][]protocol.Resource{
		"eml://witsml14": {res("eml://witsml14/well(a)", "A"), res("eml://witsml14/well(b)", "B")},
	}}
	tree := newTestTree(source)
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]
	require.NoError(t, tree.LoadChildren(context.Background(), root))
	require.Len(t, root.Children(), 2)

	source.mu.Lock()
	source.responses["eml://witsml14"] = []protocol.Resource{res("eml://witsml14/well(c)", "C")}
	source.mu.Unlock()

	require.NoError(t, tree.ClearAndLoadChildren(context.Background(), root))
	require.Len(t, root.Children(), 1)
	assert.Equal(t, "C", root.Children()[0].Name())

	// On failure after the clear, children stay cleared rather than mixing.
	source.mu.Lock()
	source.err = errors.New("transport failure")
	source.mu.Unlock()

	assert.Error(t, tree.ClearAndLoadChildren(context.Background(), root))
	assert.Empty(t, root.Children())
}

func TestConcurrentLoadsForSameNodeCoalesce(t *testing.T) {
	source := &fakeSource{
		responses: map[string][]protocol.Resource{
			"eml://witsml14": {res("eml://witsml14/well(a)", "A")},
		},
		block: make(chan struct{}),
	}
	tree := newTestTree(source)
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = tree.LoadChildren(context.Background(), root)
		}(i)
	}

	close(source.block)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Len(t, root.Children(), 1, "coalesced loads must not duplicate children")
}

func TestContainsAndStaleSelection(t *testing.T) {
	source := &fakeSource{responses: map[string][]protocol.Resource{
		"eml://witsml14": {res("eml://witsml14/well(a)", "A")},
	}}
	tree := newTestTree(source)
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]
	require.NoError(t, tree.LoadChildren(context.Background(), root))

	child := root.Children()[0]
	tree.Select(child)
	assert.True(t, tree.Contains(child))
	assert.Same(t, child, tree.Selected())

	// Reload discards the old child node; the stale selection resolves to nil.
	require.NoError(t, tree.ClearAndLoadChildren(context.Background(), root))
	assert.False(t, tree.Contains(child))
	assert.Nil(t, tree.Selected())
}

func TestExpandCollapse(t *testing.T) {
	tree := newTestTree(&fakeSource{})
	tree.SetRoots([]protocol.Resource{res("eml://witsml14", "Store")})
	root := tree.Roots()[0]

	assert.False(t, root.Expanded())
	tree.Expand(root)
	assert.True(t, root.Expanded())
	tree.Collapse(root)
	assert.False(t, root.Expanded())
}
