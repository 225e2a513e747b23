package signhands

import (
	"fmt"
	"log/slog"
	"math"
)

// DefaultSmoothing is the fraction of the remaining distance to the target
// pose covered each tick.
const DefaultSmoothing = 0.25

// DefaultPoseTilt is the wrist rotation held while fingerspelling.
var DefaultPoseTilt = Vec3{X: -0.1, Y: 0.15, Z: 0}

// Skeleton proportions in scene units.
var (
	fingerRootOffsets = [NumFingers]Vec3{
		{X: -0.35, Y: 0.15, Z: 0.1},
		{X: -0.18, Y: 0.6},
		{X: 0, Y: 0.65},
		{X: 0.17, Y: 0.6},
		{X: 0.32, Y: 0.5},
	}
	segmentLengths = [NumFingers]float64{0.18, 0.22, 0.25, 0.23, 0.18}
)

// JointTransforms is the renderable output of one hand for one frame.
type JointTransforms struct {
	Side     Side
	Wrist    Vec3
	Segments [NumFingers][SegmentsPerFinger]float64
}

// Hand animates one hand. It owns its joint tree and steers a current pose
// toward a target pose every tick.
type Hand struct {
	side Side

	wrist    *Joint
	fingers  [NumFingers]*Joint
	segments [NumFingers][SegmentsPerFinger]*Joint

	current JointPose
	target  JointPose

	state     string
	startedAt float64
	elapsed   float64

	smoothing float64
	poseTilt  Vec3
	log       *slog.Logger
}

// HandOption configures a Hand.
type HandOption func(*Hand)

// WithSmoothing sets the per-tick interpolation factor, in (0, 1].
func WithSmoothing(k float64) HandOption {
	return func(h *Hand) { h.smoothing = k }
}

// WithPoseTilt sets the wrist rotation held during fingerspelling.
func WithPoseTilt(v Vec3) HandOption {
	return func(h *Hand) { h.poseTilt = v }
}

// WithLogger sets the logger used for recovery warnings.
func WithLogger(l *slog.Logger) HandOption {
	return func(h *Hand) { h.log = l }
}

// NewHand creates a hand with its skeleton: a wrist root, five finger roots
// and three segments per finger.
func NewHand(side Side, opts ...HandOption) *Hand {
	h := &Hand{
		side:      side,
		state:     StateIdle,
		smoothing: DefaultSmoothing,
		poseTilt:  DefaultPoseTilt,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	h.log = h.log.With(slog.String("component", "hand"), slog.String("side", side.String()))

	h.wrist = NewJoint(side.String()+"_wrist", Vec3{})
	for f := Finger(0); f < NumFingers; f++ {
		off := fingerRootOffsets[f]
		if side == SideLeft {
			off.X = -off.X
		}
		root := NewJoint(fmt.Sprintf("%s_%s", side, f), off)
		h.wrist.AddChild(root)
		h.fingers[f] = root

		parent := root
		for s := 0; s < SegmentsPerFinger; s++ {
			seg := NewJoint(fmt.Sprintf("%s_%s_%d", side, f, s), Vec3{Y: segmentLengths[f]})
			parent.AddChild(seg)
			h.segments[f][s] = seg
			parent = seg
		}
	}

	h.current = IdlePose(0)
	h.target = h.current
	return h
}

// Side returns which hand this is.
func (h *Hand) Side() Side { return h.side }

// Root returns the wrist joint.
func (h *Hand) Root() *Joint { return h.wrist }

// Segment returns the joint for segment s (0 nearest the palm) of finger f.
func (h *Hand) Segment(f Finger, s int) *Joint { return h.segments[f][s] }

// Current returns the rendered pose.
func (h *Hand) Current() JointPose { return h.current }

// Target returns the pose the hand is steering toward.
func (h *Hand) Target() JointPose { return h.target }

// State returns the animation-state tag.
func (h *Hand) State() string { return h.state }

// StartedAt returns the elapsed time at which the current state was set.
func (h *Hand) StartedAt() float64 { return h.startedAt }

// SetFingerTarget sets one finger's target curl. The value is not clamped.
func (h *Hand) SetFingerTarget(f Finger, curl float64) {
	h.target.Curls[f] = curl
}

// SetWristTarget sets the target wrist rotation in radians.
func (h *Hand) SetWristTarget(x, y, z float64) {
	h.target.Wrist = Vec3{x, y, z}
}

// ApplyNamedPose switches to POSE and copies a full handshape onto the
// finger targets with the fingerspelling wrist tilt.
func (h *Hand) ApplyNamedPose(c FingerCurls) {
	h.state = StatePose
	h.startedAt = h.elapsed
	for f := Finger(0); f < NumFingers; f++ {
		h.SetFingerTarget(f, c[f])
	}
	tilt := h.sidedWrist(h.poseTilt)
	h.SetWristTarget(tilt.X, tilt.Y, tilt.Z)
}

// TriggerGesture switches the animation-state tag. Targets follow on the
// next Tick.
func (h *Hand) TriggerGesture(tag string) {
	h.state = tag
	h.startedAt = h.elapsed
}

// Tick advances the hand to elapsed seconds on the avatar clock. It
// recomputes the target from the state tag, eases the current pose toward
// it, resets any NaN wrist rotation or curl to zero and writes the pose to
// the joints.
func (h *Hand) Tick(elapsed float64) {
	h.elapsed = elapsed
	h.updateTarget(elapsed)

	h.current = approachPose(h.current, h.target, h.smoothing)

	if h.current.Wrist.IsNaN() {
		h.log.Warn("invalid wrist rotation, resetting", slog.String("state", h.state))
		h.current.Wrist = Vec3{}
		if h.target.Wrist.IsNaN() {
			h.target.Wrist = Vec3{}
		}
	}
	for f := Finger(0); f < NumFingers; f++ {
		if !math.IsNaN(h.current.Curls[f]) {
			continue
		}
		h.log.Warn("invalid finger curl, resetting",
			slog.String("state", h.state), slog.String("finger", f.String()))
		h.current.Curls[f] = 0
		if math.IsNaN(h.target.Curls[f]) {
			h.target.Curls[f] = 0
		}
	}

	h.applyToJoints()
}

// updateTarget computes the target pose for the current state at t.
func (h *Hand) updateTarget(t float64) {
	switch h.state {
	case StatePose:
		h.target.Wrist = h.sidedWrist(h.poseTilt.Add(idleWrist(t)))
	default:
		h.target = h.sidedPose(GesturePose(h.state, t))
	}
}

// sidedWrist mirrors a right-hand wrist rotation for the left hand.
func (h *Hand) sidedWrist(v Vec3) Vec3 {
	if h.side == SideLeft {
		return Vec3{v.X, -v.Y, -v.Z}
	}
	return v
}

// sidedPose mirrors a right-hand pose for the left hand.
func (h *Hand) sidedPose(p JointPose) JointPose {
	if h.side == SideLeft {
		return mirror(p)
	}
	return p
}

// applyToJoints writes the current pose onto the skeleton. Every segment of
// a finger shares the finger's curl.
func (h *Hand) applyToJoints() {
	h.wrist.SetRotation(h.current.Wrist)
	for f := Finger(0); f < NumFingers; f++ {
		for s := 0; s < SegmentsPerFinger; s++ {
			h.segments[f][s].SetRotation(Vec3{X: h.current.Curls[f]})
		}
	}
}

// Transforms returns the joint rotations for rendering.
func (h *Hand) Transforms() JointTransforms {
	out := JointTransforms{Side: h.side, Wrist: h.wrist.Rotation}
	for f := 0; f < NumFingers; f++ {
		for s := 0; s < SegmentsPerFinger; s++ {
			out.Segments[f][s] = h.segments[f][s].Rotation.X
		}
	}
	return out
}
