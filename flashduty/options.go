package flashduty

import "time"

// PushOption customizes a single push call.
type PushOption func(*pushOptions)

type pushOptions struct {
	integrationKey string
}

// WithIntegrationKey overrides the integration key for one call.
// It takes precedence over the client's configured key.
func WithIntegrationKey(key string) PushOption {
	return func(o *pushOptions) {
		o.integrationKey = key
	}
}

// KeyOption customizes the process-wide default client created by SetKey.
type KeyOption func(*Config)

// WithUser sets the default user injected into event labels as user_id.
func WithUser(user string) KeyOption {
	return func(c *Config) { c.DefaultUser = user }
}

// WithStrategy sets the default strategy injected into event labels as
// strategy_id.
func WithStrategy(strategy string) KeyOption {
	return func(c *Config) { c.DefaultStrategy = strategy }
}

// WithEndpoint overrides the alert-push endpoint.
func WithEndpoint(endpoint string) KeyOption {
	return func(c *Config) { c.Endpoint = endpoint }
}

// WithTimeout overrides the push round-trip timeout.
func WithTimeout(d time.Duration) KeyOption {
	return func(c *Config) { c.Timeout = d }
}
