package flashduty

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobal drops any previously configured default client.
// SetKey overwrites unconditionally, so storing a keyless client is
// equivalent to the never-configured state.
func resetGlobal(t *testing.T) {
	t.Helper()
	global.Store(New(Config{}))
	t.Cleanup(func() { global.Store(New(Config{})) })
}

type capturedPush struct {
	key    string
	labels map[string]string
}

func newCaptureServer(t *testing.T) (*httptest.Server, func() []capturedPush) {
	t.Helper()

	var mu sync.Mutex
	var pushes []capturedPush

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body struct {
			Labels map[string]string `json:"labels"`
		}
		_ = json.Unmarshal(raw, &body)

		mu.Lock()
		pushes = append(pushes, capturedPush{
			key:    r.URL.Query().Get("integration_key"),
			labels: body.Labels,
		})
		mu.Unlock()

		_, _ = w.Write([]byte(`{"request_id": "r1", "data": {"alert_key": "abc"}}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedPush {
		mu.Lock()
		defer mu.Unlock()
		return pushes
	}
}

func TestGlobalPush_WithoutSetKey(t *testing.T) {
	resetGlobal(t)

	_, err := Push(context.Background(), Event{
		TitleRule:   "t",
		EventStatus: StatusWarning,
	})

	require.Error(t, err)
	assert.Equal(t, CodeMissingIntegrationKey, errx.AsErrorX(err).Code())
}

func TestSetKey_GlobalKeyUsed(t *testing.T) {
	resetGlobal(t)
	srv, pushes := newCaptureServer(t)

	SetKey("A", WithEndpoint(srv.URL))

	_, err := Push(context.Background(), Event{TitleRule: "t", EventStatus: StatusInfo})
	require.NoError(t, err)

	require.Len(t, pushes(), 1)
	assert.Equal(t, "A", pushes()[0].key)
}

func TestSetKey_PerCallKeyWins(t *testing.T) {
	resetGlobal(t)
	srv, pushes := newCaptureServer(t)

	SetKey("A", WithEndpoint(srv.URL))

	_, err := Push(context.Background(), Event{TitleRule: "t", EventStatus: StatusInfo},
		WithIntegrationKey("B"))
	require.NoError(t, err)

	require.Len(t, pushes(), 1)
	assert.Equal(t, "B", pushes()[0].key)
}

func TestSetKey_LastWriteWins(t *testing.T) {
	resetGlobal(t)
	srv, pushes := newCaptureServer(t)

	SetKey("first", WithEndpoint(srv.URL), WithUser("alice"))
	SetKey("second", WithEndpoint(srv.URL))

	_, err := Push(context.Background(), Event{TitleRule: "t", EventStatus: StatusInfo})
	require.NoError(t, err)

	require.Len(t, pushes(), 1)
	assert.Equal(t, "second", pushes()[0].key)
	// defaults are replaced wholesale, not merged
	assert.NotContains(t, pushes()[0].labels, "user_id")
}

func TestSetKey_InjectsUserAndStrategyLabels(t *testing.T) {
	resetGlobal(t)
	srv, pushes := newCaptureServer(t)

	SetKey("k", WithEndpoint(srv.URL), WithUser("alice"), WithStrategy("s1"))

	_, err := Push(context.Background(), Event{
		TitleRule:   "t",
		EventStatus: StatusWarning,
		Labels:      map[string]string{"service": "engine"},
	})
	require.NoError(t, err)

	require.Len(t, pushes(), 1)
	assert.Equal(t, map[string]string{
		"service":     "engine",
		"user_id":     "alice",
		"strategy_id": "s1",
	}, pushes()[0].labels)
}

func TestGlobalPushAsync_UsesConfiguredClient(t *testing.T) {
	resetGlobal(t)
	srv, pushes := newCaptureServer(t)

	SetKey("k", WithEndpoint(srv.URL))

	res := <-PushAsync(context.Background(), Event{TitleRule: "t", EventStatus: StatusOk})

	require.NoError(t, res.Err)
	assert.Equal(t, "abc", res.Response.Data.AlertKey)
	require.Len(t, pushes(), 1)
	assert.Equal(t, "k", pushes()[0].key)
}
