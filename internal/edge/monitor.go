package edge

import "time"

// Monitor feeds sampled levels through an owned Switch and turns its
// transitions into events. The consuming reads guarantee one event per
// physical transition no matter how often the loop polls.
type Monitor struct {
	sw            Switch
	counts        Counts
	startTime     time.Time
	lastHeartbeat time.Time
}

// NewMonitor creates a monitor for a contact that starts in the off level.
// The startTime is used for calculating uptime in heartbeat events.
func NewMonitor(startTime time.Time) *Monitor {
	return &Monitor{
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Process takes a new level sample and returns any events that should be
// emitted. A run of identical samples produces no events; each genuine
// transition produces exactly one.
func (m *Monitor) Process(level bool, now time.Time) []Event {
	m.sw.Set(level)

	var events []Event

	if m.sw.ConsumeSwitchedOn() {
		m.counts.On++
		events = append(events, Event{
			Timestamp: now,
			Type:      EventOn,
			State:     StateOn,
		})
	}

	if m.sw.ConsumeSwitchedOff() {
		m.counts.Off++
		events = append(events, Event{
			Timestamp: now,
			Type:      EventOff,
			State:     StateOff,
		})
	}

	return events
}

// CurrentState returns the current level of the contact.
func (m *Monitor) CurrentState() State {
	return StateFor(m.sw.IsOn())
}

// CountsSnapshot returns a copy of the event counts.
func (m *Monitor) CountsSnapshot() Counts {
	return m.counts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil if the interval has not
// elapsed or if interval is <= 0 (disabled).
func (m *Monitor) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}

	if now.Sub(m.lastHeartbeat) < interval {
		return nil
	}

	m.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(m.startTime),
		Counts:    m.counts,
	}
}
