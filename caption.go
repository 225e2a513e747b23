package signhands

import (
	"time"

	"github.com/tanema/gween/ease"
)

// CaptionPrefix precedes the sign text in a caption.
const CaptionPrefix = "Now displaying: "

// Caption is the on-screen label naming the sign being performed. A new
// sign fades in; clearing the sign hides the caption at once.
type Caption struct {
	// Alpha is the caption opacity in [0, 1].
	Alpha float64

	sign string
	fade time.Duration
	tw   *TweenGroup
}

// NewCaption creates an empty caption whose text fades in over fade.
func NewCaption(fade time.Duration) *Caption {
	return &Caption{fade: fade}
}

// Set changes the displayed sign. Setting the same sign again does not
// restart the fade.
func (c *Caption) Set(sign string) {
	if sign == c.sign {
		return
	}
	c.sign = sign
	c.tw = nil
	switch {
	case sign == "":
		c.Alpha = 0
	case c.fade <= 0:
		c.Alpha = 1
	default:
		c.Alpha = 0
		c.tw = TweenCaptionAlpha(c, 1, float32(c.fade.Seconds()), ease.OutQuad)
	}
}

// Update advances the fade by dt seconds.
func (c *Caption) Update(dt float64) {
	if c.tw == nil {
		return
	}
	c.tw.Update(float32(dt))
	if c.tw.Done {
		c.tw = nil
	}
}

// Sign returns the raw sign text.
func (c *Caption) Sign() string { return c.sign }

// Text returns the caption line, or "" when no sign is shown.
func (c *Caption) Text() string {
	if c.sign == "" {
		return ""
	}
	return CaptionPrefix + c.sign
}
