package signhands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ScriptStep is a single action in a playback script.
type ScriptStep struct {
	Action string   `json:"action" jsonschema:"enum=enqueue,enum=text,enum=wait,enum=drain,enum=expect"`
	Tokens []string `json:"tokens,omitempty" jsonschema:"description=gloss tokens for enqueue"`
	Text   string   `json:"text,omitempty" jsonschema:"description=English text for text"`
	Frames int      `json:"frames,omitempty" jsonschema:"description=frames to wait"`
	Millis int      `json:"ms,omitempty" jsonschema:"description=milliseconds to wait when frames is unset"`
	Sign   *string  `json:"sign,omitempty" jsonschema:"description=expected sign text for expect; empty string means idle"`
}

// Script is the top-level JSON structure for a playback script.
type Script struct {
	FPS   int          `json:"fps,omitempty" jsonschema:"description=frames per second of the synthetic clock (default 60)"`
	Steps []ScriptStep `json:"steps"`
}

const defaultScriptFPS = 60

// Runner drives an avatar through a script frame by frame on synthetic
// clocks, recording every sign it shows. It is used for automated playback
// tests and for demo loops.
type Runner struct {
	steps    []ScriptStep
	cursor   int
	wait     int
	draining bool
	done     bool

	frameDur time.Duration
	start    time.Time
	frame    int

	timeline []string
	last     string
	failures []string
}

// LoadScript parses a JSON script and returns a Runner ready to drive an
// avatar via Step or Run.
func LoadScript(jsonData []byte) (*Runner, error) {
	var script Script
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return NewRunner(script)
}

// NewRunner validates script and returns a Runner for it.
func NewRunner(script Script) (*Runner, error) {
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "enqueue", "text", "wait", "drain":
		case "expect":
			if st.Sign == nil {
				return nil, fmt.Errorf("parse script: step %d: expect needs sign", i)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	fps := script.FPS
	if fps <= 0 {
		fps = defaultScriptFPS
	}
	return &Runner{
		steps:    script.Steps,
		frameDur: time.Second / time.Duration(fps),
		start:    time.Unix(0, 0).UTC(),
	}, nil
}

// Done reports whether every step has executed.
func (r *Runner) Done() bool {
	return r.done
}

// Timeline returns the signs shown so far, one entry per change, with ""
// marking a return to idle.
func (r *Runner) Timeline() []string {
	return r.timeline
}

// Failures returns the expect steps that did not match.
func (r *Runner) Failures() []string {
	return r.failures
}

// Clock returns the synthetic clocks for the next frame.
func (r *Runner) Clock() (elapsed float64, now time.Time) {
	d := time.Duration(r.frame) * r.frameDur
	return d.Seconds(), r.start.Add(d)
}

// Step executes due script steps and advances the avatar one frame.
func (r *Runner) Step(a *Avatar) Frame {
	r.execute(a)
	elapsed, now := r.Clock()
	f := a.Update(elapsed, now)
	r.frame++
	if f.Sign != r.last {
		r.timeline = append(r.timeline, f.Sign)
		r.last = f.Sign
	}
	return f
}

// Run steps the avatar until the script finishes and playback has drained,
// or maxFrames elapse. It returns an error listing failed expectations.
func (r *Runner) Run(a *Avatar, maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		if r.done && !a.seq.Playing() && a.seq.Pending() == 0 {
			break
		}
		r.Step(a)
	}
	if !r.done {
		return fmt.Errorf("script: not finished after %d frames (step %d of %d)", maxFrames, r.cursor, len(r.steps))
	}
	if len(r.failures) > 0 {
		return fmt.Errorf("script: %d expectation(s) failed: %s", len(r.failures), strings.Join(r.failures, "; "))
	}
	return nil
}

// execute runs steps until one of them waits.
func (r *Runner) execute(a *Avatar) {
	if r.done {
		return
	}
	if r.draining {
		if a.seq.Playing() || a.seq.Pending() > 0 {
			return
		}
		r.draining = false
	}
	if r.wait > 0 {
		r.wait--
		return
	}

	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "enqueue":
			a.Enqueue(st.Tokens...)
		case "text":
			a.EnqueueText(st.Text)
		case "expect":
			if got := a.seq.Sign(); got != *st.Sign {
				r.failures = append(r.failures,
					fmt.Sprintf("step %d: sign = %q, want %q", r.cursor-1, got, *st.Sign))
			}
		case "drain":
			if a.seq.Playing() || a.seq.Pending() > 0 {
				r.draining = true
				return
			}
		case "wait":
			frames := st.Frames
			if frames == 0 && st.Millis > 0 {
				frames = max(1, int(time.Duration(st.Millis)*time.Millisecond/r.frameDur))
			}
			if frames > 0 {
				r.wait = frames - 1 // this frame counts as one
				return
			}
		}
	}
	r.done = true
}
