package mqtt

import "log"

// queuedMsg holds a serialized message waiting for the broker to come back.
type queuedMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// backlog is a fixed-capacity FIFO of messages queued while disconnected.
// When full, the oldest message is overwritten. Not safe for concurrent
// use — the publisher serializes access.
type backlog struct {
	msgs    []queuedMsg
	next    int // next write position
	queued  int
	dropped bool // a message was overwritten since the last drain
}

func newBacklog(capacity int) *backlog {
	return &backlog{msgs: make([]queuedMsg, capacity)}
}

func (b *backlog) push(msg queuedMsg) {
	if b.queued == len(b.msgs) {
		if !b.dropped {
			log.Printf("mqtt: backlog full (%d messages), dropping oldest", len(b.msgs))
			b.dropped = true
		}
		// next already points at the oldest entry; queued stays at capacity.
		b.msgs[b.next] = msg
		b.next = (b.next + 1) % len(b.msgs)
		return
	}
	b.msgs[b.next] = msg
	b.next = (b.next + 1) % len(b.msgs)
	b.queued++
}

// drain returns all queued messages in FIFO order and empties the backlog.
func (b *backlog) drain() []queuedMsg {
	if b.queued == 0 {
		return nil
	}

	out := make([]queuedMsg, b.queued)
	oldest := (b.next - b.queued + len(b.msgs)) % len(b.msgs)
	for i := range out {
		out[i] = b.msgs[(oldest+i)%len(b.msgs)]
	}

	b.queued = 0
	b.next = 0
	b.dropped = false
	return out
}

func (b *backlog) len() int {
	return b.queued
}
