package swirl

import "testing"

func TestCooldownCountsDown(t *testing.T) {
	clk := NewManualClock()
	cd := NewCooldown(1).WithClock(clk.Now)

	if !cd.Hot() {
		t.Fatal("fresh cooldown should be hot")
	}
	assertNear(t, "normalized at start", cd.Normalized(), 0)

	clk.Advance(0.5)
	if !cd.Hot() {
		t.Error("should still be hot at half time")
	}
	assertNear(t, "normalized at half", cd.Normalized(), 0.5)

	clk.Advance(0.5)
	if cd.Hot() {
		t.Error("should be cold exactly at the deadline")
	}
	assertNear(t, "normalized when cold", cd.Normalized(), 1)

	clk.Advance(10)
	assertNear(t, "normalized clamps at 1", cd.Normalized(), 1)
}

func TestColdCooldownStartsExpired(t *testing.T) {
	clk := NewManualClock()
	cd := NewColdCooldown(5).WithClock(clk.Now)
	if cd.Hot() {
		t.Fatal("cold cooldown should start expired")
	}
	if cd.Duration() != 5 {
		t.Errorf("Duration = %f, want 5", cd.Duration())
	}

	cd.Reset(2)
	if !cd.Hot() {
		t.Error("reset should re-arm")
	}
	clk.Advance(2)
	if cd.Hot() {
		t.Error("should be cold after the new duration")
	}
}

func TestCooldownZeroDuration(t *testing.T) {
	clk := NewManualClock()
	cd := NewCooldown(0).WithClock(clk.Now)
	if cd.Hot() {
		t.Error("zero-duration cooldown is immediately cold")
	}
	assertNear(t, "normalized with no duration", cd.Normalized(), 0)
}

func TestCooldownPauseResume(t *testing.T) {
	clk := NewManualClock()
	cd := NewCooldown(2).WithClock(clk.Now)

	clk.Advance(1)
	cd.Pause()
	clk.Advance(10)
	if !cd.Hot() {
		t.Fatal("paused cooldown should not expire")
	}
	assertNear(t, "normalized while paused", cd.Normalized(), 0.5)

	cd.Resume()
	clk.Advance(0.5)
	assertNear(t, "normalized after resume", cd.Normalized(), 0.75)
	clk.Advance(0.5)
	if cd.Hot() {
		t.Error("should expire after resumed remainder")
	}
}

func TestCooldownElapsedClamps(t *testing.T) {
	clk := NewManualClock()
	cd := NewCooldown(1).WithClock(clk.Now)
	clk.Advance(3)
	assertNear(t, "elapsed clamps to duration", cd.Elapsed(), 1)
}
