package eventgen

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// jsonPayload marshals event payloads. The stdlib-compatible config sorts map
// keys, which keeps serialized payloads byte-identical across runs with the
// same seed.
var jsonPayload = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is one fully formed product-usage event in the wire shape the raw
// store and the downstream SQL transforms consume. Events are immutable after
// synthesis.
type Event struct {
	EventID        string         `json:"event_id"`
	EventType      string         `json:"event_type"`
	EventTimestamp time.Time      `json:"event_timestamp"`
	UserID         string         `json:"user_id"`
	SessionID      string         `json:"session_id"`
	Properties     map[string]any `json:"properties"`
	Context        Context        `json:"context"`
}

// Context carries the synthetic client context attached to every event.
type Context struct {
	Platform  string `json:"platform"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// PayloadJSON serializes the full nested event structure into the single
// opaque document the raw store persists.
func (e Event) PayloadJSON() ([]byte, error) {
	return jsonPayload.Marshal(e)
}
