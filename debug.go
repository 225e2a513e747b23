package signhands

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame timing and playback state.
// Only populated when Avatar.debug is true.
type debugStats struct {
	sequencerTime time.Duration
	handsTime     time.Duration
	transformTime time.Duration
	pending       int
	rightState    string
	leftState     string
}

// debugLog writes frame stats at debug level.
func (a *Avatar) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	total := stats.sequencerTime + stats.handsTime + stats.transformTime
	a.log.Debug("frame",
		slog.Duration("sequencer", stats.sequencerTime),
		slog.Duration("hands", stats.handsTime),
		slog.Duration("transforms", stats.transformTime),
		slog.Duration("total", total),
		slog.Int("pending", stats.pending),
		slog.String("right", stats.rightState),
		slog.String("left", stats.leftState),
	)
}

// debugMaxTreeDepth is the deepest joint chain considered sane.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if the chain from j to its root is deeper than
// debugMaxTreeDepth. Hosts that nest the avatar container deep inside their
// own scene hit this first.
func debugCheckTreeDepth(log *slog.Logger, j *Joint) {
	depth := 0
	for p := j; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Warn("joint tree too deep",
			slog.Int("depth", depth),
			slog.Int("threshold", debugMaxTreeDepth),
			slog.String("joint", j.Name))
	}
}
