package flashduty

// Error codes carried by errors returned from this package.
// Callers branch on them via errx.AsErrorX(err).Code().
const (
	// CodeMissingIntegrationKey is returned when neither a configured nor a
	// per-call integration key is available at push time. No network request
	// is made in that case.
	CodeMissingIntegrationKey = "MISSING_INTEGRATION_KEY"

	// CodeInvalidEvent is returned when an event violates a field constraint.
	// Per-field messages are attached via errx fields. No network request is
	// made in that case.
	CodeInvalidEvent = "INVALID_EVENT"

	// CodeTransportFailure is returned on network-level failures (DNS,
	// connection refused, timeout) where no HTTP response was received.
	CodeTransportFailure = "TRANSPORT_FAILURE"

	// CodeUnexpectedStatus is returned when Flashduty answers with a non-2xx
	// status. The HTTP status and the remote error code and message are
	// attached as error details.
	CodeUnexpectedStatus = "UNEXPECTED_STATUS"

	// CodeMalformedResponse is returned when a 2xx response body does not
	// match the documented success shape.
	CodeMalformedResponse = "MALFORMED_RESPONSE"
)
