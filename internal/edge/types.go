// Package edge contains pure logic for tracking a boolean contact and the
// transitions between its levels. This package has NO external dependencies
// (no GPIO, MQTT, OS, or time.Sleep). Time is always injectable via
// time.Time parameters.
package edge

import "time"

// State represents the logical level of the monitored contact.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// EventType represents a level transition event.
type EventType string

const (
	EventOn  EventType = "CONTACT_ON"
	EventOff EventType = "CONTACT_OFF"
)

// Event represents a level transition to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	State     State
}

// Counts tracks the number of each event type since startup.
type Counts struct {
	On  int
	Off int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counts    Counts
}

// StateFor converts a boolean level to its State.
func StateFor(on bool) State {
	if on {
		return StateOn
	}
	return StateOff
}
