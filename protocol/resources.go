package protocol

// --- Discovery Structures ---

// Resource describes one node of the store's resource hierarchy as returned
// by a discovery query.
type Resource struct {
	URI          string                 `json:"uri"`                    // ETP URI (e.g., "eml://witsml14/well(abc123)")
	Name         string                 `json:"name,omitempty"`         // Human-readable name
	ResourceType string                 `json:"resourceType,omitempty"` // e.g., "Folder", "DataObject"
	ContentType  string                 `json:"contentType,omitempty"`  // Media type of the underlying object
	HasChildren  bool                   `json:"hasChildren,omitempty"`  // True when the node can be expanded further
	ChildCount   int                    `json:"childCount,omitempty"`   // Known child count, -1 when unknown
	CustomData   map[string]interface{} `json:"customData,omitempty"`   // Store-specific extras
}

// GetResourcesParams defines parameters for 'discovery/getResources'.
// URI addresses the parent whose immediate children are requested.
type GetResourcesParams struct {
	URI string `json:"uri"`
}

// GetResourcesResult defines the result for 'discovery/getResources'.
type GetResourcesResult struct {
	Resources []Resource `json:"resources"`
}

// --- Session Structures ---

// RequestSessionParams defines parameters for 'session/request'.
type RequestSessionParams struct {
	ApplicationName     string       `json:"applicationName"`
	ApplicationVersion  string       `json:"applicationVersion,omitempty"`
	RequestedProtocols  []Capability `json:"requestedProtocols"`
	SupportedDataFormat string       `json:"supportedDataFormat,omitempty"` // "json" unless configured otherwise
}

// RequestSessionResult defines the result for 'session/request'.
type RequestSessionResult struct {
	SessionID          string        `json:"sessionId"`
	ApplicationName    string        `json:"applicationName,omitempty"`
	SupportedProtocols CapabilitySet `json:"supportedProtocols"`
}

// SessionClosedParams defines parameters for 'notifications/session/closed'.
type SessionClosedParams struct {
	Reason string `json:"reason,omitempty"`
}
