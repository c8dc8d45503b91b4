package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meTur4ik/witsml-studio/protocol"
)

// call sends one request and waits for its response, honoring both the
// caller's context and the client's request timeout.
func (c *clientImpl) call(ctx context.Context, method string, params interface{}) (*protocol.JSONRPCResponse, error) {
	t := c.currentTransport()
	if t == nil {
		return nil, ErrNotConnected
	}

	id := generateRequestID()
	req := protocol.NewRequest(id, method, params)
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	respCh := make(chan *protocol.JSONRPCResponse, 1)
	c.pendingRequestsMu.Lock()
	c.pendingRequests[id] = respCh
	c.pendingRequestsMu.Unlock()
	defer func() {
		c.pendingRequestsMu.Lock()
		delete(c.pendingRequests, id)
		c.pendingRequestsMu.Unlock()
	}()

	if err := t.Send(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}

	timer := time.NewTimer(c.requestTimeout)
	defer timer.Stop()

	select {
	case resp := <-respCh:
		if resp.Error != nil {
			return nil, protocol.NewStoreError(resp.Error)
		}
		return resp, nil
	case <-timer.C:
		return nil, NewTimeoutError(method, c.requestTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, ErrNotConnected
	}
}

// RequestChildren asks the store for the immediate children of the given URI.
func (c *clientImpl) RequestChildren(ctx context.Context, uri string) ([]protocol.Resource, error) {
	resp, err := c.call(ctx, protocol.MethodGetResources, protocol.GetResourcesParams{URI: uri})
	if err != nil {
		return nil, err
	}
	var result protocol.GetResourcesResult
	if err := protocol.UnmarshalPayload(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result.Resources, nil
}

// GetObject retrieves the raw data object at the given URI from the store.
func (c *clientImpl) GetObject(ctx context.Context, uri string) (string, error) {
	resp, err := c.call(ctx, protocol.MethodGetObject, protocol.GetObjectParams{URI: uri})
	if err != nil {
		return "", err
	}
	var result protocol.GetObjectResult
	if err := protocol.UnmarshalPayload(resp.Result, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result.DataObject.Data, nil
}

// DeleteObject removes the data object at the given URI from the store.
func (c *clientImpl) DeleteObject(ctx context.Context, uri string) error {
	// A delete success carries no meaningful result payload.
	_, err := c.call(ctx, protocol.MethodDeleteObject, protocol.DeleteObjectParams{URI: uri})
	return err
}

// Ping verifies the session is still responsive.
func (c *clientImpl) Ping(ctx context.Context) error {
	_, err := c.call(ctx, protocol.MethodPing, nil)
	return err
}

// DescribeChannels requests channel metadata for the given URI.
func (c *clientImpl) DescribeChannels(ctx context.Context, uri string) ([]protocol.ChannelMetadataRecord, error) {
	resp, err := c.call(ctx, protocol.MethodDescribeChannels, protocol.DescribeChannelsParams{URIs: []string{uri}})
	if err != nil {
		return nil, err
	}
	var result protocol.DescribeChannelsResult
	if err := protocol.UnmarshalPayload(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result.Channels, nil
}
