package protocol

// --- Channel Description Structures ---

// DescribeChannelsParams defines parameters for 'channels/describe'.
// Each URI addresses a describable object whose channels are requested.
type DescribeChannelsParams struct {
	URIs []string `json:"uris"`
}

// ChannelMetadataRecord describes one channel available for streaming.
type ChannelMetadataRecord struct {
	ChannelID   int    `json:"channelId"`
	ChannelName string `json:"channelName"`
	ChannelURI  string `json:"channelUri,omitempty"`
	Mnemonic    string `json:"mnemonic,omitempty"`
	UOM         string `json:"uom,omitempty"` // Unit of measure
	DataType    string `json:"dataType,omitempty"`
	Description string `json:"description,omitempty"`
}

// DescribeChannelsResult defines the result for 'channels/describe'.
type DescribeChannelsResult struct {
	Channels []ChannelMetadataRecord `json:"channels"`
}
