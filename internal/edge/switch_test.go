package edge

import "testing"

func TestZeroValueIsOffWithFlagsClear(t *testing.T) {
	var s Switch
	if s.IsOn() {
		t.Error("zero value should be off")
	}
	if s.JustSwitchedOn() {
		t.Error("zero value should not report switched on")
	}
	if s.JustSwitchedOff() {
		t.Error("zero value should not report switched off")
	}
}

func TestSetTrueFromOff(t *testing.T) {
	var s Switch
	s.SetTrue()

	if !s.IsOn() {
		t.Error("expected on after SetTrue")
	}
	if !s.JustSwitchedOn() {
		t.Error("expected switched-on flag after off→on")
	}
	if s.JustSwitchedOff() {
		t.Error("switched-off flag should be clear after off→on")
	}
}

func TestSetFalseFromOn(t *testing.T) {
	var s Switch
	s.SetTrue()
	s.SetFalse()

	if s.IsOn() {
		t.Error("expected off after SetFalse")
	}
	if !s.JustSwitchedOff() {
		t.Error("expected switched-off flag after on→off")
	}
	if s.JustSwitchedOn() {
		t.Error("switched-on flag should be clear after on→off")
	}
}

func TestSetFalseWhileOffIsNoop(t *testing.T) {
	var s Switch
	s.SetFalse()

	if s.IsOn() {
		t.Error("expected off")
	}
	if s.JustSwitchedOn() || s.JustSwitchedOff() {
		t.Error("no flags should be set by an off-write while already off")
	}
}

// TestRepeatedSetTrueClearsUnreadFlag pins the documented policy: a second
// on-write clears the switched-on flag even if nobody read it in between.
// Repeated "hold" signals are not repeated transitions. Intentional — do not
// "fix" this to latch the flag until read.
func TestRepeatedSetTrueClearsUnreadFlag(t *testing.T) {
	var s Switch
	s.SetTrue()
	s.SetTrue() // flag never read

	if !s.IsOn() {
		t.Error("expected on after repeated SetTrue")
	}
	if s.JustSwitchedOn() {
		t.Error("repeated SetTrue should clear the switched-on flag")
	}
	if s.ConsumeSwitchedOn() {
		t.Error("consuming read should find nothing after repeated SetTrue")
	}
}

func TestRepeatedSetFalseClearsUnreadFlag(t *testing.T) {
	var s Switch
	s.SetTrue()
	s.SetFalse()
	s.SetFalse() // flag never read

	if s.IsOn() {
		t.Error("expected off after repeated SetFalse")
	}
	if s.JustSwitchedOff() {
		t.Error("repeated SetFalse should clear the switched-off flag")
	}
}

func TestConsumingReadIsOneShot(t *testing.T) {
	var s Switch
	s.SetTrue()

	if !s.ConsumeSwitchedOn() {
		t.Error("first consuming read after transition should return true")
	}
	if s.ConsumeSwitchedOn() {
		t.Error("second consuming read without a new transition should return false")
	}

	s.SetFalse()

	if !s.ConsumeSwitchedOff() {
		t.Error("first consuming read after on→off should return true")
	}
	if s.ConsumeSwitchedOff() {
		t.Error("second consuming read should return false")
	}
}

func TestNonConsumingReadIsIdempotent(t *testing.T) {
	var s Switch
	s.SetTrue()

	for i := 0; i < 5; i++ {
		if !s.JustSwitchedOn() {
			t.Fatalf("read %d: non-consuming read changed its answer", i)
		}
	}

	// Still consumable afterwards.
	if !s.ConsumeSwitchedOn() {
		t.Error("non-consuming reads should not consume the flag")
	}
}

func TestConsumingOnDoesNotTouchOffFlag(t *testing.T) {
	var s Switch
	s.SetTrue()
	s.SetFalse()

	if s.ConsumeSwitchedOn() {
		t.Error("switched-on flag should not be set after on→off")
	}
	if !s.ConsumeSwitchedOff() {
		t.Error("switched-off flag should survive a consuming read of the other flag")
	}
}

func TestSetDispatches(t *testing.T) {
	var s Switch
	s.Set(true)
	if !s.IsOn() || !s.JustSwitchedOn() {
		t.Error("Set(true) should behave like SetTrue")
	}
	s.Set(false)
	if s.IsOn() || !s.JustSwitchedOff() {
		t.Error("Set(false) should behave like SetFalse")
	}
}

// TestFlagsNeverBothSet drives the switch through every write sequence up to
// length 12 and checks the invariant that at most one flag is set.
func TestFlagsNeverBothSet(t *testing.T) {
	const maxLen = 12
	for n := 1; n <= maxLen; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			var s Switch
			for i := 0; i < n; i++ {
				s.Set(bits&(1<<i) != 0)
				if s.JustSwitchedOn() && s.JustSwitchedOff() {
					t.Fatalf("sequence %0*b: both flags set after write %d", n, bits, i)
				}
			}
		}
	}
}

// TestSpecScenario walks the canonical usage sequence: a redundant off-write,
// a transition on, two consuming reads, a transition off.
func TestSpecScenario(t *testing.T) {
	var s Switch

	s.SetFalse() // no-op while off
	if s.JustSwitchedOn() || s.JustSwitchedOff() {
		t.Fatal("no-op off-write set a flag")
	}

	s.SetTrue()
	if !s.ConsumeSwitchedOn() {
		t.Error("expected first consuming read to see the on-transition")
	}
	if s.ConsumeSwitchedOn() {
		t.Error("expected second consuming read to see nothing")
	}

	s.SetFalse()
	if !s.ConsumeSwitchedOff() {
		t.Error("expected consuming read to see the off-transition")
	}
}

// TestLoopScenario feeds a simulated button trace through Set and checks
// that the consuming reads fire exactly once per press and once per release.
func TestLoopScenario(t *testing.T) {
	levels := []bool{false, false, true, true, false, false}

	var s Switch
	var pressedAt, releasedAt []int

	for frame, level := range levels {
		s.Set(level)
		if s.ConsumeSwitchedOn() {
			pressedAt = append(pressedAt, frame)
		}
		if s.ConsumeSwitchedOff() {
			releasedAt = append(releasedAt, frame)
		}
	}

	if len(pressedAt) != 1 || pressedAt[0] != 2 {
		t.Errorf("pressed at %v, want exactly [2]", pressedAt)
	}
	if len(releasedAt) != 1 || releasedAt[0] != 4 {
		t.Errorf("released at %v, want exactly [4]", releasedAt)
	}
}
