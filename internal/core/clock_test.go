package core

import "testing"

func TestClockAdvancesFixedStep(t *testing.T) {
	c := NewClock(10)
	c.Tick()
	c.Tick()
	if got := c.Now(); got < 0.199 || got > 0.201 {
		t.Fatalf("two ticks at 10 TPS = %v, want 0.2", got)
	}
}

func TestClockPauseAndReset(t *testing.T) {
	c := NewClock(10)
	c.Tick()
	c.TogglePause()
	before := c.Now()
	c.Tick()
	if c.Now() != before {
		t.Fatal("paused clock advanced")
	}
	c.Reset()
	if c.Now() != 0 || c.Paused() {
		t.Fatal("reset clock should be at zero and running")
	}
}

func TestClockDefaultsBadTPS(t *testing.T) {
	c := NewClock(0)
	c.Tick()
	if got := c.Now(); got < 1.0/61 || got > 1.0/59 {
		t.Fatalf("tick with default TPS = %v, want ~1/60", got)
	}
}