package flashduty

import "github.com/samber/lo"

// Label keys injected from the client configuration.
const (
	labelUserID     = "user_id"
	labelStrategyID = "strategy_id"
)

// eventPayload is the wire-format request body of the standard alert-push
// endpoint.
type eventPayload struct {
	TitleRule   string            `json:"title_rule"`
	EventStatus Status            `json:"event_status"`
	AlertKey    string            `json:"alert_key,omitempty"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Images      []Image           `json:"images,omitempty"`
}

// buildPayload validates ev and assembles the request body.
//
// The labels actually transmitted are the caller's labels plus user_id and
// strategy_id injected from the client defaults. Caller-supplied keys win on
// collision.
//
// buildPayload performs no I/O and is deterministic given its inputs.
func buildPayload(ev Event, defaultUser, defaultStrategy string) (eventPayload, error) {
	if err := validateEvent(ev); err != nil {
		return eventPayload{}, err
	}

	return eventPayload{
		TitleRule:   ev.TitleRule,
		EventStatus: ev.EventStatus,
		AlertKey:    ev.AlertKey,
		Description: ev.Description,
		Labels:      effectiveLabels(ev.Labels, defaultUser, defaultStrategy),
		Images:      ev.Images,
	}, nil
}

// effectiveLabels unions the caller labels with the injected defaults.
// A nil result keeps the labels field out of the JSON body entirely.
func effectiveLabels(labels map[string]string, defaultUser, defaultStrategy string) map[string]string {
	injected := make(map[string]string, 2)
	if defaultUser != "" {
		injected[labelUserID] = defaultUser
	}
	if defaultStrategy != "" {
		injected[labelStrategyID] = defaultStrategy
	}

	if len(injected) == 0 && len(labels) == 0 {
		return nil
	}

	// later maps win in lo.Assign, so caller keys take precedence
	return lo.Assign(injected, labels)
}
