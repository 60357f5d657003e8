package flashduty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
)

// send posts body to the alert-push endpoint with key attached as the
// integration_key query parameter, and normalizes the outcome: a parsed
// Response on 2xx, an UNEXPECTED_STATUS error on any other status, a
// TRANSPORT_FAILURE error when no response was received at all.
func (c *Client) send(ctx context.Context, key string, body []byte) (*Response, error) {
	endpoint, err := buildURL(c.cfg.Endpoint, key)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errx.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeTransportFailure),
			errx.WithType(errx.T_Internal),
		)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful to do with the close error

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeTransportFailure),
			errx.WithType(errx.T_Internal),
		)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, raw)
	}

	return decodeResponse(raw)
}

func buildURL(endpoint, key string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", errx.Wrap(err)
	}

	q := u.Query()
	q.Set("integration_key", key)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// newStatusError builds the error for a non-2xx response, attaching the HTTP
// status and, when the body parses as the documented error shape, the remote
// code and message for caller inspection.
func newStatusError(status int, raw []byte) error {
	details := errx.D{"http_status": status}
	msg := fmt.Sprintf("flashduty returned status %d", status)

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		details["remote_code"] = cast.ToString(body.Error.Code)
		details["remote_message"] = body.Error.Message
		if body.RequestID != "" {
			details["request_id"] = body.RequestID
		}
		msg = fmt.Sprintf("flashduty returned status %d: %s", status, body.Error.Message)
	} else {
		details["raw_body"] = truncate(string(raw))
	}

	return errx.New(msg,
		errx.WithCode(CodeUnexpectedStatus),
		errx.WithType(typeFromStatus(status)),
		errx.WithDetails(details),
	)
}

// typeFromStatus converts an HTTP status code to the matching errx.Type.
func typeFromStatus(status int) errx.Type {
	switch {
	case status == http.StatusUnauthorized:
		return errx.T_Authentication
	case status == http.StatusForbidden:
		return errx.T_Forbidden
	case status == http.StatusNotFound:
		return errx.T_NotFound
	case status == http.StatusConflict:
		return errx.T_Conflict
	case status == http.StatusTooManyRequests:
		return errx.T_Throttling
	case status >= 400 && status < 500:
		return errx.T_Validation
	default:
		return errx.T_Internal
	}
}
