// Package witsmlstudio provides a Go client for browsing WITSML energy-data
// stores over a persistent, capability-negotiated session.
//
// # Overview
//
// A WITSML store exposes a hierarchy of drilling resources (wells, wellbores,
// logs, channels, messages) addressed by ETP URIs. This library implements the
// client side of that interaction: a WebSocket session with capability
// negotiation, lazy discovery of the resource hierarchy, and a coordinator
// that gates every store action on the session state and the shape of the
// selected resource's address.
//
// # Organization
//
//   - github.com/meTur4ik/witsml-studio/browser: session-gated command coordinator
//   - github.com/meTur4ik/witsml-studio/client: store session client (handshake, requests)
//   - github.com/meTur4ik/witsml-studio/etpuri: ETP URI parsing and classification
//   - github.com/meTur4ik/witsml-studio/hierarchy: lazy-loading resource tree
//   - github.com/meTur4ik/witsml-studio/protocol: message and capability definitions
//   - github.com/meTur4ik/witsml-studio/transport: transport layer implementations
//
// # Basic Usage
//
//	c, err := client.NewClient("wss://store.example.com/etp",
//	  client.WithAuth(client.NewBearerAuth(token)),
//	)
//	if err != nil {
//	  log.Fatalf("Failed to create client: %v", err)
//	}
//	defer c.Close()
//
//	b := browser.New(c, browser.WithBaseURI("eml://witsml14"))
//	c.OnSessionOpened(b.OnSessionOpened)
//	c.OnSessionClosed(b.OnSessionClosed)
//
//	if err := c.Connect(ctx); err != nil {
//	  log.Fatalf("Failed to connect: %v", err)
//	}
//
// # Versioning
//
// witsml-studio follows semantic versioning. The current version is available
// through the Version constant.
package witsmlstudio

// Version is the current version of the witsml-studio library
const Version = "0.1.0"
