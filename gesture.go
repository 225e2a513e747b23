package signhands

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Animation-state tags with built-in meaning. Any other tag is a gesture
// keyword.
const (
	StateIdle = "IDLE"
	StatePose = "POSE"
)

// WristFunc returns a wrist rotation in radians at elapsed time t (seconds).
type WristFunc func(t float64) Vec3

// FingerFunc returns finger curls at elapsed time t (seconds).
type FingerFunc func(t float64) FingerCurls

// Gesture pairs a wrist motion with a finger pose. Both are pure functions
// of elapsed time, so a gesture has no state of its own.
type Gesture struct {
	Wrist   WristFunc
	Fingers FingerFunc
}

// Pose evaluates the gesture at t.
func (g Gesture) Pose(t float64) JointPose {
	return JointPose{Curls: g.Fingers(t), Wrist: g.Wrist(t)}
}

// Canonical hand shapes.
var (
	ShapeOpen     = Curls(0, 0, 0, 0, 0)
	ShapeFist     = Curls(1.0, 1.5, 1.5, 1.5, 1.5)
	ShapePoint    = Curls(1.2, 0, 1.5, 1.5, 1.5)
	ShapeThumbsUp = Curls(0, 1.5, 1.5, 1.5, 1.5)
)

// --- Idle ---

const (
	idleCurl      = 0.2
	idleCurlSwing = 0.05
	idleWristX    = 0.05
	idleWristZ    = 0.03
)

// idleWrist is the resting sway shared by IDLE and POSE.
func idleWrist(t float64) Vec3 {
	return Vec3{X: idleWristX * math.Sin(t*0.8), Z: idleWristZ * math.Sin(t*0.6)}
}

func idleCurls(t float64) FingerCurls {
	thumb := idleCurl + idleCurlSwing*math.Sin(t*1.2)
	rest := idleCurl + idleCurlSwing*math.Sin(t*1.2+0.8)
	return FingerCurls{thumb, rest, rest, rest, rest}
}

// IdlePose returns the rest pose at t.
func IdlePose(t float64) JointPose {
	return JointPose{Curls: idleCurls(t), Wrist: idleWrist(t)}
}

// GesturePose returns the right-hand target pose for a gesture keyword at t.
// Catalog keywords use their authored gesture, IDLE and the empty tag rest,
// and anything else gets the procedural fallback.
func GesturePose(tag string, t float64) JointPose {
	if tag == StateIdle || tag == "" {
		return IdlePose(t)
	}
	if g, ok := catalog[tag]; ok {
		return g.Pose(t)
	}
	return fallbackGesture(tag).Pose(t)
}

// mirror flips a right-hand pose for the left hand.
func mirror(p JointPose) JointPose {
	p.Wrist.Y = -p.Wrist.Y
	p.Wrist.Z = -p.Wrist.Z
	return p
}

// --- Wrist motions ---

func still(x, y, z float64) WristFunc {
	v := Vec3{x, y, z}
	return func(float64) Vec3 { return v }
}

// nod rocks the wrist about X.
func nod(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{X: amp * math.Sin(t*freq)} }
}

// shake swings the wrist side to side about Y.
func shake(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{Y: amp * math.Sin(t*freq)} }
}

// twist rotates the forearm about Z.
func twist(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{Z: amp * math.Sin(t*freq)} }
}

// wave is a raised-palm twist.
func wave(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{X: -0.2, Z: amp * math.Sin(t*freq)} }
}

// circle traces a loop with X and Y a quarter period apart.
func circle(freq, amp float64) WristFunc {
	return func(t float64) Vec3 {
		s, c := math.Sincos(t * freq)
		return Vec3{X: amp * s, Y: amp * c}
	}
}

// tap dips the wrist forward and back without crossing rest.
func tap(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{X: amp * math.Abs(math.Sin(t*freq))} }
}

// bounce is tap about Z.
func bounce(freq, amp float64) WristFunc {
	return func(t float64) Vec3 { return Vec3{Z: amp * math.Abs(math.Sin(t*freq))} }
}

// phase returns the position of t within a cycle of angular frequency freq,
// in [0, 1).
func phase(t, freq float64) float32 {
	p := t * freq / (2 * math.Pi)
	return float32(p - math.Floor(p))
}

// push is a one-shot forward thrust that eases out and snaps back each cycle.
func push(freq, amp float64) WristFunc {
	return func(t float64) Vec3 {
		return Vec3{X: float64(ease.OutQuad(phase(t, freq), 0, float32(amp), 1))}
	}
}

// swing eases the wrist across Y and back each cycle.
func swing(freq, amp float64) WristFunc {
	return func(t float64) Vec3 {
		p := phase(t, freq) * 2
		if p > 1 {
			p = 2 - p
		}
		return Vec3{Y: float64(ease.InOutSine(p, float32(-amp), float32(2*amp), 1))}
	}
}

// tilted offsets a motion by a constant rotation.
func tilted(w WristFunc, x, y, z float64) WristFunc {
	off := Vec3{x, y, z}
	return func(t float64) Vec3 { return w(t).Add(off) }
}

// --- Finger poses ---

func shape(c FingerCurls) FingerFunc {
	return func(float64) FingerCurls { return c }
}

// letter holds a fingerspelling handshape.
func letter(ch rune) FingerFunc {
	c, ok := LookupPose(ch)
	if !ok {
		panic("signhands: no handshape for " + string(ch))
	}
	return shape(c)
}

// wiggle ripples every finger around base with a per-finger phase lag.
func wiggle(base FingerCurls, freq, amp float64) FingerFunc {
	return func(t float64) FingerCurls {
		var c FingerCurls
		for i := range c {
			c[i] = base[i] + amp*math.Sin(t*freq+float64(i)*0.6)
		}
		return c
	}
}

// clench opens and closes the whole hand between from and to.
func clench(from, to FingerCurls, freq float64) FingerFunc {
	return func(t float64) FingerCurls {
		k := math.Abs(math.Sin(t * freq))
		var c FingerCurls
		for i := range c {
			c[i] = from[i] + k*(to[i]-from[i])
		}
		return c
	}
}

// keyboard taps each finger on two incommensurate periods, which reads as
// irregular typing while staying a pure function of t.
func keyboard() FingerFunc {
	return func(t float64) FingerCurls {
		var c FingerCurls
		for i := range c {
			f := float64(i)
			c[i] = 0.5 + 0.3*math.Sin(t*(7+f*math.Phi))*math.Sin(t*(3.1+f*math.Sqrt2))
		}
		c[Thumb] = 0.9
		return c
	}
}
