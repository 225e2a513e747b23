package signhands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNoContainer is returned by NewAvatar when no usable container joint is
// supplied.
var ErrNoContainer = errors.New("signhands: avatar needs a container joint")

// handSpacing is the distance of each wrist from the container origin.
const handSpacing = 0.9

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Right, Left  JointTransforms
	Sign         string  // raw sign text, "" when idle
	Caption      string  // "Now displaying: <sign>", "" when idle
	CaptionAlpha float64 // caption opacity
	Playing      bool
	Pending      int // tokens still queued
}

// Avatar is the top-level object that owns both hands, the playback
// sequencer and the caption. All methods must be called from the frame loop
// goroutine.
type Avatar struct {
	root        *Joint
	left, right *Hand
	seq         *Sequencer
	caption     *Caption

	lastElapsed float64
	ticked      bool

	debug bool
	log   *slog.Logger
}

// NewAvatar builds the hands under container and wires them to a sequencer.
// container is the joint the host renders from; it must not be nil or
// disposed.
func NewAvatar(container *Joint, cfg Config) (*Avatar, error) {
	if container == nil || container.IsDisposed() {
		return nil, ErrNoContainer
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new avatar: %w", err)
	}

	log := cfg.logger()
	opts := []HandOption{
		WithSmoothing(cfg.Smoothing),
		WithPoseTilt(cfg.Tilt()),
		WithLogger(log),
	}
	right := NewHand(SideRight, opts...)
	left := NewHand(SideLeft, opts...)
	right.Root().SetOffset(Vec3{X: handSpacing})
	left.Root().SetOffset(Vec3{X: -handSpacing})
	seq, err := NewSequencer(left, right, cfg)
	if err != nil {
		return nil, fmt.Errorf("new avatar: %w", err)
	}
	container.AddChild(right.Root())
	container.AddChild(left.Root())
	if cfg.Debug {
		debugCheckTreeDepth(log, right.Segment(Middle, SegmentsPerFinger-1))
	}

	return &Avatar{
		root:    container,
		left:    left,
		right:   right,
		seq:     seq,
		caption: NewCaption(cfg.CaptionFade()),
		debug:   cfg.Debug,
		log:     log.With(slog.String("component", "avatar")),
	}, nil
}

// Root returns the container joint the hands hang from.
func (a *Avatar) Root() *Joint { return a.root }

// Left returns the left hand.
func (a *Avatar) Left() *Hand { return a.left }

// Right returns the right hand.
func (a *Avatar) Right() *Hand { return a.right }

// Sequencer returns the playback sequencer.
func (a *Avatar) Sequencer() *Sequencer { return a.seq }

// Caption returns the caption.
func (a *Avatar) Caption() *Caption { return a.caption }

// Enqueue appends gloss tokens to the playback queue.
func (a *Avatar) Enqueue(tokens ...string) int {
	return a.seq.Enqueue(tokens...)
}

// EnqueueText tokenizes English text and queues the result.
func (a *Avatar) EnqueueText(text string) int {
	return a.seq.Enqueue(Tokenize(text)...)
}

// SetEventSink sets the optional playback observer.
func (a *Avatar) SetEventSink(sink EventSink) {
	a.seq.SetEventSink(sink)
}

// SetDebugMode enables or disables per-frame timing stats at debug level.
func (a *Avatar) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Update advances the avatar one frame. elapsed is the monotonic animation
// clock in seconds and drives gesture waveforms; now is the wall clock and
// decides playback slot boundaries.
func (a *Avatar) Update(elapsed float64, now time.Time) Frame {
	var stats debugStats
	var t0 time.Time

	if a.debug {
		t0 = time.Now()
	}

	a.seq.Tick(now)

	if a.debug {
		stats.sequencerTime = time.Since(t0)
		t0 = time.Now()
	}

	a.right.Tick(elapsed)
	a.left.Tick(elapsed)

	if a.debug {
		stats.handsTime = time.Since(t0)
		t0 = time.Now()
	}

	UpdateTransforms(a.root)

	if a.debug {
		stats.transformTime = time.Since(t0)
	}

	dt := 0.0
	if a.ticked && elapsed > a.lastElapsed {
		dt = elapsed - a.lastElapsed
	}
	a.lastElapsed = elapsed
	a.ticked = true

	a.caption.Set(a.seq.Sign())
	a.caption.Update(dt)

	if a.debug {
		stats.pending = a.seq.Pending()
		stats.rightState = a.right.State()
		stats.leftState = a.left.State()
		a.debugLog(stats)
	}

	return a.Frame()
}

// Frame returns the renderable state as of the last Update.
func (a *Avatar) Frame() Frame {
	return Frame{
		Right:        a.right.Transforms(),
		Left:         a.left.Transforms(),
		Sign:         a.seq.Sign(),
		Caption:      a.caption.Text(),
		CaptionAlpha: a.caption.Alpha,
		Playing:      a.seq.Playing(),
		Pending:      a.seq.Pending(),
	}
}

// Dispose detaches and disposes both hands. The container is left intact.
func (a *Avatar) Dispose() {
	a.right.Root().Dispose()
	a.left.Root().Dispose()
}
