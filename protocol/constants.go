// Package protocol defines the structures and constants for the witsml-studio store protocol.
package protocol

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	// CurrentProtocolVersion defines the store protocol version this library implements.
	CurrentProtocolVersion = "1.1"

	// --- Message Type (Method Name) Constants ---
	// These align with the JSON-RPC 'method' field names.

	// Session
	MethodRequestSession = "session/request"
	MethodCloseSession   = "session/close" // Notification

	MethodNotifySessionOpened = "notifications/session/opened" // Notification
	MethodNotifySessionClosed = "notifications/session/closed" // Notification

	// Discovery
	MethodGetResources = "discovery/getResources"

	// Store
	MethodGetObject    = "store/getObject"
	MethodDeleteObject = "store/deleteObject"

	// Channels
	MethodDescribeChannels = "channels/describe"

	// Ping
	MethodPing = "ping"
)

// Capability identifies a protocol function the session negotiated support for.
type Capability string

const (
	CapabilityDiscovery        Capability = "discovery"
	CapabilityStore            Capability = "store"
	CapabilityStoreNotify      Capability = "storeNotification"
	CapabilityChannelStreaming Capability = "channelStreaming"
	CapabilityChannelDataFrame Capability = "channelDataFrame"
	CapabilityDataArray        Capability = "dataArray"
)

// DefaultCapabilities is the set a client requests when none is configured.
var DefaultCapabilities = []Capability{
	CapabilityDiscovery,
	CapabilityStore,
	CapabilityChannelStreaming,
}

// CapabilitySet is the set of capabilities granted to a session.
// Identifiers are matched case-insensitively and stored lower-cased.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s.Add(c)
	}
	return s
}

// Add inserts a capability into the set.
func (s CapabilitySet) Add(c Capability) {
	s[normalizeCapability(c)] = struct{}{}
}

// Has reports whether the set contains the given capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[normalizeCapability(c)]
	return ok
}

// List returns the capabilities in sorted order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a JSON string array.
func (s CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes a JSON string array into the set.
func (s *CapabilitySet) UnmarshalJSON(data []byte) error {
	var caps []Capability
	if err := json.Unmarshal(data, &caps); err != nil {
		return err
	}
	out := make(CapabilitySet, len(caps))
	for _, c := range caps {
		out.Add(c)
	}
	*s = out
	return nil
}

func normalizeCapability(c Capability) Capability {
	return Capability(strings.ToLower(strings.TrimSpace(string(c))))
}
