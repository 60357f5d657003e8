package flashduty

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/code19m/errx"
	"github.com/flashcat-cloud/flashduty-go/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/flashcat-cloud/flashduty-go"

// Client pushes alert events to Flashduty.
// It is safe for concurrent use; construct it once and reuse it.
type Client struct {
	cfg Config
	hc  *http.Client
}

// New creates a Client from cfg, applying the endpoint and timeout defaults.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Result is delivered by PushAsync once the push completes.
type Result struct {
	Response *Response
	Err      error
}

// Push validates ev, assembles the wire payload and posts it to Flashduty,
// blocking until the response arrives or the timeout expires.
//
// It returns an error carrying one of the package error codes (see
// err_codes.go). Validation and key-resolution failures are reported before
// any network I/O, and nothing is retried.
func (c *Client) Push(ctx context.Context, ev Event, opts ...PushOption) (*Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "flashduty.push")
	defer span.End()

	span.SetAttributes(attribute.String("flashduty.event_status", string(ev.EventStatus)))

	resp, err := c.push(ctx, ev, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errx.AsErrorX(err).Code())
		return nil, err
	}

	span.SetAttributes(attribute.String("flashduty.alert_key", resp.Data.AlertKey))

	return resp, nil
}

// PushAsync behaves exactly like Push but does not block the caller: the same
// pipeline runs in a goroutine and the outcome is delivered on the returned
// channel. The channel is buffered, so abandoning the result does not leak
// the goroutine.
func (c *Client) PushAsync(ctx context.Context, ev Event, opts ...PushOption) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		resp, err := c.Push(ctx, ev, opts...)
		out <- Result{Response: resp, Err: err}
	}()
	return out
}

func (c *Client) push(ctx context.Context, ev Event, opts ...PushOption) (*Response, error) {
	var po pushOptions
	for _, opt := range opts {
		opt(&po)
	}

	payload, err := buildPayload(ev, c.cfg.DefaultUser, c.cfg.DefaultStrategy)
	if err != nil {
		return nil, err
	}

	key := po.integrationKey
	if key == "" {
		key = c.cfg.IntegrationKey
	}
	if key == "" {
		return nil, errx.New(
			"integration key is not set. Call SetKey, configure the client or pass WithIntegrationKey",
			errx.WithCode(CodeMissingIntegrationKey),
			errx.WithType(errx.T_Validation),
		)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	log := logger.Named("flashduty")
	log.With("title_rule", ev.TitleRule, "event_status", ev.EventStatus).
		Debug("pushing alert event")

	resp, err := c.send(ctx, key, body)
	if err != nil {
		return nil, err
	}

	log.With("request_id", resp.RequestID, "alert_key", resp.Data.AlertKey).
		Debug("alert event accepted")

	return resp, nil
}
