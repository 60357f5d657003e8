package flashduty

import (
	"context"
	"sync/atomic"
)

//nolint:gochecknoglobals // process-wide default client, mirrors the SetKey/Push surface of the SDK
var global atomic.Value // stores *Client

// SetKey configures the process-wide default client used by the package-level
// Push and PushAsync.
//
// SetKey may be called again at any time; the last write wins and previous
// defaults are discarded wholesale. Concurrent writers are not synchronized;
// set it once during startup before pushing concurrently.
func SetKey(key string, opts ...KeyOption) {
	cfg := Config{IntegrationKey: key}
	for _, opt := range opts {
		opt(&cfg)
	}
	global.Store(New(cfg))
}

// Push pushes ev through the process-wide default client, blocking until the
// response arrives. If SetKey was never called, it fails with
// CodeMissingIntegrationKey unless a per-call key is supplied.
func Push(ctx context.Context, ev Event, opts ...PushOption) (*Response, error) {
	return getGlobal().Push(ctx, ev, opts...)
}

// PushAsync pushes ev through the process-wide default client without
// blocking. See Client.PushAsync.
func PushAsync(ctx context.Context, ev Event, opts ...PushOption) <-chan Result {
	return getGlobal().PushAsync(ctx, ev, opts...)
}

func getGlobal() *Client {
	if c, ok := global.Load().(*Client); ok {
		return c
	}
	// No key configured yet: pushes through this client fail before any
	// network access unless the caller overrides the key per call.
	return New(Config{})
}
