package browser

import (
	"context"

	"github.com/meTur4ik/witsml-studio/protocol"
)

// StoreSession is the transport collaborator the browser delegates protocol
// calls to. The client package provides the production implementation.
type StoreSession interface {
	// RequestChildren returns one level of children of the given address.
	RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error)

	// GetObject fetches the object at the given address and returns its
	// serialized (XML) payload.
	GetObject(ctx context.Context, uri string) (string, error)

	// DeleteObject removes the object at the given address from the store.
	DeleteObject(ctx context.Context, uri string) error
}

// Confirmer obtains a yes/no decision from the user before a destructive
// action. Synchronous from the browser's viewpoint.
type Confirmer interface {
	Confirm(message string) bool
}

// Clipboard receives address strings copied by the user.
type Clipboard interface {
	SetText(text string) error
}

// PanelActivator switches the application shell to another feature panel,
// handing it the address to operate on.
type PanelActivator interface {
	Activate(panelID string, contextURI string)
}

// Feature panel identifiers passed to PanelActivator.
const (
	PanelChannelStreaming = "channel-streaming"
	PanelStore            = "store"
)

// CommandsHandler observes recomputed command availability.
type CommandsHandler func(Commands)

// SessionStatusHandler observes session open/close transitions.
type SessionStatusHandler func(open bool)

// ObjectHandler observes objects fetched by GetObject.
type ObjectHandler func(uri, xml string)

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(message string) bool

func (f ConfirmerFunc) Confirm(message string) bool { return f(message) }
