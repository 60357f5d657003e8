package flashduty

import "time"

// DefaultEndpoint is Flashduty's standard alert-push endpoint.
const DefaultEndpoint = "https://api.flashcat.cloud/event/push/alert/standard"

const defaultTimeout = 5 * time.Second

// Config defines configuration options for a Client.
type Config struct {
	// IntegrationKey is the credential identifying the inbound integration
	// on the Flashduty side. It is attached to every push. A client with an
	// empty key can still be constructed; pushes then require a per-call key
	// via WithIntegrationKey.
	IntegrationKey string `yaml:"integration_key" mask:"true"`

	// DefaultUser, when set, is injected into every event's labels as
	// user_id unless the caller already set that label.
	DefaultUser string `yaml:"default_user"`

	// DefaultStrategy, when set, is injected into every event's labels as
	// strategy_id unless the caller already set that label.
	DefaultStrategy string `yaml:"default_strategy"`

	// Endpoint overrides the alert-push endpoint. Mainly useful for tests
	// and private deployments.
	Endpoint string `yaml:"endpoint" validate:"omitempty,url" default:"https://api.flashcat.cloud/event/push/alert/standard"`

	// Timeout bounds the full round-trip of a single push.
	Timeout time.Duration `yaml:"timeout" default:"5s"`
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
