// Package browser coordinates client-side interaction with a WITSML store
// session: it tracks the session lifecycle, owns the lazily loaded resource
// hierarchy, and gates every user-triggerable store action on both the
// negotiated session capabilities and the structure of the selected
// resource's address.
package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/meTur4ik/witsml-studio/hierarchy"
	"github.com/meTur4ik/witsml-studio/logx"
	"github.com/meTur4ik/witsml-studio/protocol"
)

// DefaultBaseURI is the address the root resource set is requested from when
// none is configured.
const DefaultBaseURI = "eml://witsml14"

// Browser is the session-gated command coordinator. It owns the session
// state and the resource tree exclusively; session events and command
// dispatch are serialized, so observers always see a consistent combination
// of command flags and tree state.
type Browser struct {
	mu    sync.Mutex // serializes session events, selection changes and dispatch
	state sessionState
	tree  *hierarchy.Tree

	store     StoreSession
	logger    logx.Logger
	baseURI   string
	confirmer Confirmer
	clipboard Clipboard
	panels    PanelActivator

	// ctxMu guards the session-scoped context on its own so a close event
	// can cancel in-flight work without waiting on the dispatch lock.
	ctxMu         sync.Mutex
	sessionCtx    context.Context
	sessionCancel context.CancelFunc

	handlersMu       sync.Mutex
	commandsHandlers []CommandsHandler
	statusHandlers   []SessionStatusHandler
	objectHandlers   []ObjectHandler

	commands Commands
}

// New creates a browser delegating protocol calls to the given store session.
func New(store StoreSession, opts ...Option) *Browser {
	b := &Browser{
		store:   store,
		logger:  logx.NewDefaultLogger(),
		baseURI: DefaultBaseURI,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.tree = hierarchy.NewTree(store, b.logger)
	return b
}

// Tree returns the resource tree the browser owns.
func (b *Browser) Tree() *hierarchy.Tree { return b.tree }

// Commands returns the most recently published command availability.
func (b *Browser) Commands() Commands {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.commands
}

// OnCommandsChanged registers a handler invoked whenever command
// availability is republished.
func (b *Browser) OnCommandsChanged(h CommandsHandler) *Browser {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	b.commandsHandlers = append(b.commandsHandlers, h)
	return b
}

// OnSessionStatus registers a handler invoked on session open/close.
func (b *Browser) OnSessionStatus(h SessionStatusHandler) *Browser {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	b.statusHandlers = append(b.statusHandlers, h)
	return b
}

// OnObject registers a handler invoked with each object fetched by GetObject.
func (b *Browser) OnObject(h ObjectHandler) *Browser {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	b.objectHandlers = append(b.objectHandlers, h)
	return b
}

// OnSessionOpened handles a session-opened event from the transport. When
// the granted set includes the discovery capability it requests the root
// resource set from the configured base address; otherwise discovery-
// dependent commands simply stay disabled. Either way all command flags are
// republished.
func (b *Browser) OnSessionOpened(caps protocol.CapabilitySet) {
	b.mu.Lock()
	b.state.opened(caps)
	b.resetSessionContext()

	if !b.state.supports(protocol.CapabilityDiscovery) {
		b.logger.Info("session opened without discovery capability; browse commands stay disabled")
		notify := b.republishLocked()
		b.mu.Unlock()
		notify()
		b.publishStatus(true)
		return
	}

	b.logger.Info("session opened, loading root resources from %s", b.baseURI)
	resources, err := b.store.RequestChildren(b.currentSessionContext(), b.baseURI)
	if err != nil {
		b.logger.Warn("failed to load root resources: %v", err)
	} else {
		b.tree.SetRoots(resources)
	}

	notify := b.republishLocked()
	b.mu.Unlock()
	notify()
	b.publishStatus(true)
}

// OnSessionClosed handles a session-closed event from the transport. It
// cancels any in-flight command so a late response cannot surface effects,
// then disables and republishes every command flag.
func (b *Browser) OnSessionClosed() {
	b.ctxMu.Lock()
	if b.sessionCancel != nil {
		b.sessionCancel()
	}
	b.ctxMu.Unlock()

	b.mu.Lock()
	b.state.closed()
	b.logger.Info("session closed")
	notify := b.republishLocked()
	b.mu.Unlock()
	notify()
	b.publishStatus(false)
}

// Select marks the node as the current selection and republishes command
// availability. It does not touch the tree structure.
func (b *Browser) Select(node *hierarchy.Node) {
	b.mu.Lock()
	b.tree.Select(node)
	notify := b.republishLocked()
	b.mu.Unlock()
	notify()
}

// GetObject fetches the selected object from the store and hands its payload
// to the registered object handlers.
func (b *Browser) GetObject(ctx context.Context) error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if !computeCommands(&b.state, sel).GetObject {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}
	uri := sel.URI().Raw

	cctx, cancel := b.commandContext(ctx)
	xml, err := b.store.GetObject(cctx, uri)
	cancel()
	if err != nil {
		b.mu.Unlock()
		return fmt.Errorf("get object %s: %w", uri, b.dispatchErr(err))
	}
	if !b.state.isOpen() {
		// The session closed while the request was in flight; drop the
		// response instead of surfacing it.
		b.mu.Unlock()
		return ErrSessionClosed
	}
	b.mu.Unlock()

	b.logger.Debug("fetched object %s (%d bytes)", uri, len(xml))
	for _, h := range b.cloneObjectHandlers() {
		h(uri, xml)
	}
	return nil
}

// DeleteObject removes the selected object from the store after an explicit
// user confirmation. Declining the confirmation is a no-op, not an error.
func (b *Browser) DeleteObject(ctx context.Context) error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if !computeCommands(&b.state, sel).DeleteObject {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}
	uri := sel.URI().Raw

	if b.confirmer != nil && !b.confirmer.Confirm(fmt.Sprintf("Delete object %q from the store?", uri)) {
		b.mu.Unlock()
		b.logger.Debug("delete of %s declined", uri)
		return nil
	}

	cctx, cancel := b.commandContext(ctx)
	err := b.store.DeleteObject(cctx, uri)
	cancel()
	b.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delete object %s: %w", uri, b.dispatchErr(err))
	}
	b.logger.Info("deleted object %s", uri)
	return nil
}

// DescribeChannels hands the selected address to the channel-streaming
// feature panel.
func (b *Browser) DescribeChannels() error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if !computeCommands(&b.state, sel).DescribeChannels {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}
	uri := sel.URI().Raw
	panels := b.panels
	b.mu.Unlock()

	if panels != nil {
		panels.Activate(PanelChannelStreaming, uri)
	}
	return nil
}

// RefreshHierarchy re-requests the root resource set regardless of current
// expansion, discarding the existing tree.
func (b *Browser) RefreshHierarchy(ctx context.Context) error {
	b.mu.Lock()
	if !computeCommands(&b.state, nil).ExecuteBase {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}

	cctx, cancel := b.commandContext(ctx)
	resources, err := b.store.RequestChildren(cctx, b.baseURI)
	cancel()
	if err != nil {
		b.mu.Unlock()
		return fmt.Errorf("refresh hierarchy: %w", b.dispatchErr(err))
	}
	b.tree.SetRoots(resources)
	notify := b.republishLocked()
	b.mu.Unlock()
	notify()
	return nil
}

// RefreshSelected discards and reloads the selected node's children and
// forces the node expanded. With nothing selected it is a no-op.
func (b *Browser) RefreshSelected(ctx context.Context) error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if sel == nil {
		b.mu.Unlock()
		return nil
	}
	if !computeCommands(&b.state, sel).RefreshSelected {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}

	cctx, cancel := b.commandContext(ctx)
	err := b.tree.ClearAndLoadChildren(cctx, sel)
	cancel()
	b.tree.Expand(sel)
	notify := b.republishLocked()
	b.mu.Unlock()
	notify()
	if err != nil {
		return fmt.Errorf("refresh %s: %w", sel.URI().Raw, b.dispatchErr(err))
	}
	return nil
}

// CopyURIToClipboard sends the selected node's raw address to the clipboard
// collaborator.
func (b *Browser) CopyURIToClipboard() error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if !computeCommands(&b.state, sel).CopyURIToClipboard {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}
	uri := sel.URI().Raw
	clipboard := b.clipboard
	b.mu.Unlock()

	if clipboard == nil {
		return nil
	}
	return clipboard.SetText(uri)
}

// SendURIToStore hands the selected address to the store feature panel.
func (b *Browser) SendURIToStore() error {
	b.mu.Lock()
	sel := b.tree.Selected()
	if !computeCommands(&b.state, sel).SendURIToStore {
		b.mu.Unlock()
		return ErrCommandUnavailable
	}
	uri := sel.URI().Raw
	panels := b.panels
	b.mu.Unlock()

	if panels != nil {
		panels.Activate(PanelStore, uri)
	}
	return nil
}

// resetSessionContext replaces the session-scoped context. Callers hold b.mu.
func (b *Browser) resetSessionContext() {
	b.ctxMu.Lock()
	defer b.ctxMu.Unlock()
	if b.sessionCancel != nil {
		b.sessionCancel()
	}
	b.sessionCtx, b.sessionCancel = context.WithCancel(context.Background())
}

func (b *Browser) currentSessionContext() context.Context {
	b.ctxMu.Lock()
	defer b.ctxMu.Unlock()
	if b.sessionCtx == nil {
		return context.Background()
	}
	return b.sessionCtx
}

// commandContext derives a context from ctx that is additionally cancelled
// when the session closes, so in-flight dispatch cannot outlive the session.
func (b *Browser) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	sctx := b.currentSessionContext()
	cctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(sctx, cancel)
	return cctx, func() {
		stop()
		cancel()
	}
}

// dispatchErr maps a cancellation caused by session close to ErrSessionClosed.
func (b *Browser) dispatchErr(err error) error {
	if b.currentSessionContext().Err() != nil {
		return ErrSessionClosed
	}
	return err
}
