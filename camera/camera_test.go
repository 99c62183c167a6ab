package camera

import (
	"math/rand"
	"testing"
)

func TestLocalToScreenRoundTrip(t *testing.T) {
	c := New(1920, 1080)
	c.SetOrigin(300, 450)

	sx, sy := c.LocalToScreen(250, 250)
	if sx != 550 || sy != 700 {
		t.Errorf("LocalToScreen(250, 250) = (%v, %v), want (550, 700)", sx, sy)
	}

	lx, ly := c.ScreenToLocal(sx, sy)
	if lx != 250 || ly != 250 {
		t.Errorf("ScreenToLocal round trip = (%v, %v), want (250, 250)", lx, ly)
	}
}

func TestShakeOffsetBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New(1920, 1080)
	c.StartShake(6, 20)

	for i := 0; i < 20; i++ {
		c.Step(rng)
		x, y := c.Offset()
		if x < -6 || x > 6 || y < -6 || y > 6 {
			t.Fatalf("tick %d: offset (%v, %v) exceeds intensity 6", i, x, y)
		}
	}
}

func TestShakeDecaysToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New(1920, 1080)
	c.StartShake(4, 5)

	for i := 0; i < 5; i++ {
		c.Step(rng)
		if !c.Shaking() && i < 4 {
			t.Fatalf("shake ended early at tick %d", i)
		}
	}
	if c.Shaking() {
		t.Error("shake still active after 5 ticks")
	}

	// One more step must clear the sampled offset
	c.Step(rng)
	if x, y := c.Offset(); x != 0 || y != 0 {
		t.Errorf("offset (%v, %v) after shake ended, want (0, 0)", x, y)
	}
}

func TestShakeDoesNotMoveHitTesting(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := New(1920, 1080)
	c.SetOrigin(100, 100)
	c.StartShake(10, 10)
	c.Step(rng)

	// ScreenToLocal must ignore the shake offset entirely
	lx, ly := c.ScreenToLocal(350, 350)
	if lx != 250 || ly != 250 {
		t.Errorf("ScreenToLocal = (%v, %v) during shake, want (250, 250)", lx, ly)
	}
}

func TestStartShakeIgnoresNonPositiveDuration(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	c := New(1920, 1080)
	c.StartShake(5, 0)
	c.Step(rng)
	if c.Shaking() {
		t.Error("zero-duration shake should not start")
	}
	if x, y := c.Offset(); x != 0 || y != 0 {
		t.Errorf("offset (%v, %v) for zero-duration shake, want (0, 0)", x, y)
	}
}
