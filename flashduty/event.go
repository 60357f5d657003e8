// Package flashduty is a client SDK for pushing alert events to Flashduty
// through its standard alert-push HTTP endpoint.
//
// Construct a Client explicitly with New, or configure the process-wide
// default once with SetKey and use the package-level Push / PushAsync.
// Both entry points run the exact same validation, payload assembly and
// transport pipeline; they differ only in whether the caller blocks on the
// round-trip.
package flashduty

// Status marks the severity and lifecycle of a single alert event.
type Status string

const (
	StatusCritical Status = "Critical"
	StatusWarning  Status = "Warning"
	StatusInfo     Status = "Info"

	// StatusOk denotes recovery/closure of a previously opened alert,
	// identified by the event's AlertKey. The protocol does not enforce
	// AlertKey presence for Ok events; supplying it is caller responsibility.
	StatusOk Status = "Ok"
)

// Event is a single alert event to push.
type Event struct {
	// TitleRule is the alert title. At most 512 characters.
	TitleRule string `json:"title_rule" validate:"required,max=512"`

	// EventStatus is one of Critical, Warning, Info or Ok.
	EventStatus Status `json:"event_status" validate:"required,oneof=Critical Warning Info Ok"`

	// AlertKey correlates updates and recovery to a previously pushed event.
	// Flashduty assigns one on first push; reuse it from Response.Data.
	AlertKey string `json:"alert_key,omitempty"`

	// Description is an optional longer text. At most 2048 characters.
	Description string `json:"description,omitempty" validate:"omitempty,max=2048"`

	// Labels is arbitrary key-value metadata used for routing, grouping and
	// display. At most 50 entries; keys at most 128 characters, values at
	// most 2048 characters.
	Labels map[string]string `json:"labels,omitempty" validate:"omitempty,max=50,dive,keys,max=128,endkeys,max=2048"`

	// Images are rendered in notifications.
	Images []Image `json:"images,omitempty" validate:"omitempty,dive"`
}

// Image is a single image reference attached to an alert notification.
type Image struct {
	// Alt is the alternative text shown when the image cannot be rendered.
	Alt string `json:"alt,omitempty"`

	// Src is the image source URL.
	Src string `json:"src" validate:"required"`

	// Href, when set, turns the image into a link.
	Href string `json:"href,omitempty"`
}
