package browser

import (
	"github.com/meTur4ik/witsml-studio/hierarchy"
	"github.com/meTur4ik/witsml-studio/protocol"
)

// Commands holds the availability of every user-triggerable store action.
// All flags are derived together from the session state and the current
// selection; a Commands value is never patched field by field.
type Commands struct {
	// ExecuteBase is true when the session is open and negotiated the
	// discovery capability. Every other flag requires it.
	ExecuteBase bool

	GetObject          bool
	DeleteObject       bool
	DescribeChannels   bool
	RefreshSelected    bool
	CopyURIToClipboard bool
	SendURIToStore     bool
}

// computeCommands derives all command flags from the session state and the
// selected node. It is a pure function: same inputs, same flags.
func computeCommands(state *sessionState, selected *hierarchy.Node) Commands {
	base := state.isOpen() && state.supports(protocol.CapabilityDiscovery)
	if !base {
		return Commands{}
	}

	cmds := Commands{ExecuteBase: true}
	if selected == nil {
		return cmds
	}

	uri := selected.URI()
	if uri.Raw == "" {
		return cmds
	}

	cmds.CopyURIToClipboard = true

	// Level 0 denotes a container node with no single addressable object;
	// an empty object id means the address cannot resolve to one object.
	object := selected.Level() > 0 && uri.HasObjectID()
	cmds.GetObject = object
	cmds.DeleteObject = object
	cmds.SendURIToStore = object

	describable := uri.IsBaseURI || uri.ObjectType.Describable()
	cmds.DescribeChannels = describable
	cmds.RefreshSelected = describable

	return cmds
}
