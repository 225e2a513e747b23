package signhands

import (
	"testing"
	"time"
)

func TestCaptionEmpty(t *testing.T) {
	c := NewCaption(250 * time.Millisecond)
	if c.Text() != "" || c.Sign() != "" || c.Alpha != 0 {
		t.Errorf("new caption = %q alpha %v", c.Text(), c.Alpha)
	}
}

func TestCaptionText(t *testing.T) {
	c := NewCaption(0)
	c.Set("A")
	if c.Text() != "Now displaying: A" {
		t.Errorf("Text() = %q", c.Text())
	}
	if c.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1 without fade", c.Alpha)
	}
}

func TestCaptionFadeIn(t *testing.T) {
	c := NewCaption(500 * time.Millisecond)
	c.Set("HELLO")
	if c.Alpha != 0 {
		t.Errorf("Alpha = %v at start of fade", c.Alpha)
	}

	c.Update(0.25)
	if c.Alpha <= 0 || c.Alpha >= 1 {
		t.Errorf("Alpha = %v mid-fade, want in (0, 1)", c.Alpha)
	}

	c.Update(0.25)
	if c.Alpha != 1 {
		t.Errorf("Alpha = %v after fade, want 1", c.Alpha)
	}
}

func TestCaptionSameSignKeepsFade(t *testing.T) {
	c := NewCaption(500 * time.Millisecond)
	c.Set("HELLO")
	c.Update(0.25)
	mid := c.Alpha

	c.Set("HELLO")
	if c.Alpha != mid {
		t.Errorf("Alpha = %v after re-set, want %v", c.Alpha, mid)
	}
}

func TestCaptionClear(t *testing.T) {
	c := NewCaption(500 * time.Millisecond)
	c.Set("B")
	c.Update(0.1)
	c.Set("")
	if c.Alpha != 0 || c.Text() != "" {
		t.Errorf("cleared caption = %q alpha %v", c.Text(), c.Alpha)
	}
	// No fade left running.
	c.Update(1)
	if c.Alpha != 0 {
		t.Errorf("Alpha = %v after clear", c.Alpha)
	}
}
