package flashduty

import (
	"encoding/json"

	"github.com/code19m/errx"
)

// Response is the success response of the alert-push endpoint.
type Response struct {
	RequestID string    `json:"request_id"`
	Data      AlertData `json:"data"`
}

// AlertData carries the identifier Flashduty assigned (or echoed) for the
// pushed event. Reuse it as Event.AlertKey to update or recover the alert.
type AlertData struct {
	AlertKey string `json:"alert_key"`
}

// errorBody is the error response of the alert-push endpoint.
// The remote code is documented as string-or-int, hence the any type.
type errorBody struct {
	RequestID string `json:"request_id"`
	Error     struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// decodeResponse parses a 2xx body into a Response.
func decodeResponse(raw []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeMalformedResponse),
			errx.WithType(errx.T_Internal),
			errx.WithDetails(errx.D{"raw_body": truncate(string(raw))}),
		)
	}

	if resp.RequestID == "" || resp.Data.AlertKey == "" {
		return nil, errx.New(
			"response body lacks request_id or data.alert_key",
			errx.WithCode(CodeMalformedResponse),
			errx.WithType(errx.T_Internal),
			errx.WithDetails(errx.D{"raw_body": truncate(string(raw))}),
		)
	}

	return &resp, nil
}

const maxRawBodyDetail = 1000

func truncate(s string) string {
	if len(s) > maxRawBodyDetail {
		return s[:maxRawBodyDetail] + "..."
	}
	return s
}
