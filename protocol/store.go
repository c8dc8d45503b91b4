package protocol

// --- Store Access Structures ---

// GetObjectParams defines parameters for 'store/getObject'.
type GetObjectParams struct {
	URI string `json:"uri"`
}

// DataObject is the store's serialized representation of a single object.
type DataObject struct {
	URI         string `json:"uri"`
	Name        string `json:"name,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data"` // XML payload for WITSML objects
}

// GetObjectResult defines the result for 'store/getObject'.
type GetObjectResult struct {
	DataObject DataObject `json:"dataObject"`
}

// DeleteObjectParams defines parameters for 'store/deleteObject'.
type DeleteObjectParams struct {
	URI string `json:"uri"`
}

// DeleteObjectResult defines the result for 'store/deleteObject'. (Currently empty)
type DeleteObjectResult struct{}
