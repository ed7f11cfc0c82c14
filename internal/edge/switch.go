package edge

// Switch is a boolean level that remembers its most recent transition.
//
// After an off→on write the "switched on" flag is set; after an on→off write
// the "switched off" flag is set. At most one flag is set at any time. Each
// flag can be read two ways: JustSwitchedOn/JustSwitchedOff leave it intact,
// ConsumeSwitchedOn/ConsumeSwitchedOff clear it so that a polling caller
// reacts exactly once per transition.
//
// The zero value is an off switch with both flags clear and is ready to use.
//
// A Switch is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Switch struct {
	state       bool
	switchedOn  bool
	switchedOff bool
}

// Set writes the given level, dispatching to SetTrue or SetFalse.
func (s *Switch) Set(value bool) {
	if value {
		s.SetTrue()
	} else {
		s.SetFalse()
	}
}

// SetTrue writes the on level.
//
// If the switch was off, the "switched on" flag is set and the "switched off"
// flag is cleared. If the switch was already on, the "switched on" flag is
// cleared — a repeated on-write is a hold, not a new transition, even when
// the flag was never read in between. That last point is deliberate and
// pinned by tests; see the package tests before changing it.
func (s *Switch) SetTrue() {
	if !s.state {
		s.switchedOn = true
		s.switchedOff = false
	} else {
		s.switchedOn = false
	}
	s.state = true
}

// SetFalse writes the off level. Symmetric with SetTrue.
func (s *Switch) SetFalse() {
	if s.state {
		s.switchedOff = true
		s.switchedOn = false
	} else {
		s.switchedOff = false
	}
	s.state = false
}

// IsOn reports the current level.
func (s *Switch) IsOn() bool {
	return s.state
}

// JustSwitchedOn reports whether the most recent transition was off→on.
// It does not modify the switch; repeated calls return the same value until
// the next write or consuming read.
func (s *Switch) JustSwitchedOn() bool {
	return s.switchedOn
}

// JustSwitchedOff reports whether the most recent transition was on→off.
// It does not modify the switch.
func (s *Switch) JustSwitchedOff() bool {
	return s.switchedOff
}

// ConsumeSwitchedOn reports whether the switch just turned on, clearing the
// flag. Only the first call after a transition returns true.
func (s *Switch) ConsumeSwitchedOn() bool {
	if s.switchedOn {
		s.switchedOn = false
		return true
	}
	return false
}

// ConsumeSwitchedOff reports whether the switch just turned off, clearing the
// flag. Only the first call after a transition returns true.
func (s *Switch) ConsumeSwitchedOff() bool {
	if s.switchedOff {
		s.switchedOff = false
		return true
	}
	return false
}
