package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/meTur4ik/witsml-studio/protocol"
)

// Config represents the endpoint configuration file: a set of named store
// definitions the browser can connect to.
type Config struct {
	Stores map[string]StoreConfig `json:"stores"`
}

// StoreConfig describes how to reach one WITSML store.
type StoreConfig struct {
	// URL is the WebSocket endpoint, e.g. wss://store.example.com/etp.
	URL string `json:"url"`

	// BaseURI overrides the root of the resource hierarchy. Empty means
	// the data-schema default.
	BaseURI string `json:"baseUri,omitempty"`

	// Token is a bearer token; Username/Password select basic auth when
	// no token is set.
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Capabilities restricts the protocols requested during the session
	// handshake. Empty requests the defaults.
	Capabilities []protocol.Capability `json:"capabilities,omitempty"`

	// Options carries store-specific settings whose shape is not known
	// up front; use DecodeOptions to map them onto a typed struct.
	Options map[string]interface{} `json:"options,omitempty"`
}

// LoadConfigFromFile reads a JSON endpoint configuration from disk.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for name, store := range cfg.Stores {
		if store.URL == "" {
			return nil, fmt.Errorf("store %q has no url", name)
		}
	}
	return &cfg, nil
}

// DecodeOptions maps a store's free-form options onto a typed struct.
func (s StoreConfig) DecodeOptions(target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return fmt.Errorf("failed to build options decoder: %w", err)
	}
	if err := decoder.Decode(s.Options); err != nil {
		return fmt.Errorf("failed to decode store options: %w", err)
	}
	return nil
}

// AuthProvider builds the auth provider a store's credentials call for, or
// nil when the store is unauthenticated.
func (s StoreConfig) AuthProvider() AuthProvider {
	if s.Token != "" {
		return NewBearerAuth(s.Token)
	}
	if s.Username != "" {
		return NewBasicAuth(s.Username, s.Password)
	}
	return nil
}

// ClientOptions translates a store definition into client options.
func (s StoreConfig) ClientOptions() []Option {
	var opts []Option
	if auth := s.AuthProvider(); auth != nil {
		opts = append(opts, WithAuth(auth))
	}
	if len(s.Capabilities) > 0 {
		opts = append(opts, WithRequestedCapabilities(s.Capabilities...))
	}
	return opts
}
