// Package hierarchy models the store's resource tree on the client side.
//
// Nodes are created from discovery responses and populated lazily: children
// load only on an explicit request, and a refresh discards and reloads a
// subtree wholesale rather than merging.
package hierarchy

import (
	"github.com/meTur4ik/witsml-studio/etpuri"
	"github.com/meTur4ik/witsml-studio/protocol"
)

// Node is one resource in the hierarchy. A Node owns its children
// exclusively; the tree is a strict hierarchy with no shared ownership.
type Node struct {
	resource       protocol.Resource
	uri            etpuri.URI
	level          int
	expanded       bool
	childrenLoaded bool
	children       []*Node
}

// newNode builds a node for a discovered resource at the given depth.
func newNode(res protocol.Resource, level int) *Node {
	return &Node{
		resource: res,
		uri:      etpuri.Parse(res.URI),
		level:    level,
	}
}

// Resource returns the discovery record the node was created from.
func (n *Node) Resource() protocol.Resource { return n.resource }

// URI returns the parsed form of the node's address.
func (n *Node) URI() etpuri.URI { return n.uri }

// Level returns the node's depth; root nodes are level 0.
func (n *Node) Level() int { return n.level }

// Name returns the display name, falling back to the raw address.
func (n *Node) Name() string {
	if n.resource.Name != "" {
		return n.resource.Name
	}
	return n.uri.Raw
}

// Expanded reports whether the node is currently expanded.
func (n *Node) Expanded() bool { return n.expanded }

// ChildrenLoaded reports whether a child load has completed for the node.
func (n *Node) ChildrenLoaded() bool { return n.childrenLoaded }

// Children returns the node's current children in discovery order.
// The returned slice must not be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// setChildren replaces the node's children wholesale and marks the node
// loaded and expanded.
func (n *Node) setChildren(children []*Node) {
	n.children = children
	n.childrenLoaded = true
	n.expanded = true
}

// clearChildren drops the node's children without touching the loaded flag.
func (n *Node) clearChildren() {
	n.children = nil
}
