package signhands

import "math"

// Vec3 is a 3-component vector used for positions, bone offsets and Euler
// rotations (radians, applied X then Y then Z).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Rect is an axis-aligned screen rectangle with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Side identifies which hand a Hand animates.
type Side uint8

const (
	SideRight Side = iota // dominant hand, performs fingerspelling
	SideLeft              // mirrored hand
)

// String returns "right" or "left".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Finger indexes the five digits of a hand.
type Finger uint8

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

// NumFingers is the number of digits per hand.
const NumFingers = 5

// SegmentsPerFinger is the number of joints in each finger chain.
const SegmentsPerFinger = 3

var fingerNames = [NumFingers]string{"thumb", "index", "middle", "ring", "pinky"}

// String returns the lowercase finger name.
func (f Finger) String() string {
	if int(f) < NumFingers {
		return fingerNames[f]
	}
	return "unknown"
}

// Curl range of a finger: 0 is fully extended, CurlClosed fully curled.
// Values outside the range are accepted everywhere.
const (
	CurlOpen   = 0.0
	CurlClosed = 1.5
)

// FingerCurls holds one curl value per finger, indexed by Finger.
type FingerCurls [NumFingers]float64

// Curls builds a FingerCurls from thumb..pinky values.
func Curls(thumb, index, middle, ring, pinky float64) FingerCurls {
	return FingerCurls{thumb, index, middle, ring, pinky}
}

// JointPose is the animatable state of one hand: five finger curls and a
// wrist rotation in radians.
type JointPose struct {
	Curls FingerCurls
	Wrist Vec3
}

// approach moves cur toward target by factor k in (0, 1].
func approach(cur, target, k float64) float64 {
	return cur + k*(target-cur)
}

// approachPose moves every component of cur toward target by factor k.
func approachPose(cur, target JointPose, k float64) JointPose {
	for i := range cur.Curls {
		cur.Curls[i] = approach(cur.Curls[i], target.Curls[i], k)
	}
	cur.Wrist = Vec3{
		approach(cur.Wrist.X, target.Wrist.X, k),
		approach(cur.Wrist.Y, target.Wrist.Y, k),
		approach(cur.Wrist.Z, target.Wrist.Z, k),
	}
	return cur
}
