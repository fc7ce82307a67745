package api

// StreamConfig selects which events a stream subscription receives.
// It is sent once in the subscribe handshake and not mutated afterwards.
type StreamConfig struct {
	EventTypes []string               `json:"event_types"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
}

// Event is a single server-originated message on an event stream.
type Event struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}
