package browser

import "github.com/meTur4ik/witsml-studio/protocol"

// sessionState tracks whether the session is open and which protocol
// capabilities it negotiated. It transitions only on session events from the
// transport; command logic never mutates it directly.
type sessionState struct {
	open bool
	caps protocol.CapabilitySet
}

// opened transitions to the open state and records the granted capability
// set. Receiving it while already open refreshes the set.
func (s *sessionState) opened(caps protocol.CapabilitySet) {
	s.open = true
	s.caps = caps
}

// closed transitions to the closed state and clears the capability set.
func (s *sessionState) closed() {
	s.open = false
	s.caps = nil
}

func (s *sessionState) isOpen() bool { return s.open }

func (s *sessionState) supports(c protocol.Capability) bool {
	return s.caps != nil && s.caps.Has(c)
}
