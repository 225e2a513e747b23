package signhands

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenCaptionAlpha, Camera.OrbitTo) and call
// Update(dt) each frame; the group writes values straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// newTweenGroup tweens each field from its current value to the matching
// entry of to.
func newTweenGroup(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: len(fields)}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
		g.fields[i] = f
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenCaptionAlpha creates a TweenGroup that fades the caption's Alpha to
// the target value over duration seconds.
func TweenCaptionAlpha(c *Caption, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]*float64{&c.Alpha}, []float64{to}, duration, fn)
}
