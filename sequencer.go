package signhands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// LetterPrefix marks a fingerspelling token: "CHAR_A" spells A.
const LetterPrefix = "CHAR_"

// ParseLetterToken reports whether tok is a fingerspelling directive and
// returns the spelled character.
func ParseLetterToken(tok string) (rune, bool) {
	rest, ok := strings.CutPrefix(tok, LetterPrefix)
	if !ok || utf8.RuneCountInString(rest) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// LetterToken returns the fingerspelling token for ch.
func LetterToken(ch rune) string {
	return LetterPrefix + string(unicode.ToUpper(ch))
}

// Sequencer plays queued tokens one slot at a time on a pair of hands.
// The queue is owned by the sequencer; callers only append through Enqueue.
type Sequencer struct {
	left, right *Hand

	queue   []string
	playing bool
	token   string
	sign    string
	endsAt  time.Time

	letterDur time.Duration
	wordDur   time.Duration
	maxQueue  int

	sink EventSink
	log  *slog.Logger
}

// NewSequencer creates a sequencer driving left and right with cfg's pacing.
// cfg must pass Validate.
func NewSequencer(left, right *Hand, cfg Config) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new sequencer: %w", err)
	}
	return &Sequencer{
		left:      left,
		right:     right,
		letterDur: cfg.LetterDuration(),
		wordDur:   cfg.WordDuration(),
		maxQueue:  cfg.MaxQueue,
		log:       cfg.logger().With(slog.String("component", "sequencer")),
	}, nil
}

// SetEventSink sets the optional playback observer.
func (s *Sequencer) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Enqueue appends tokens to the back of the queue in order and returns how
// many were accepted. Empty tokens are skipped. Every other token is
// accepted unless MaxQueue is set, in which case tokens arriving at a full
// queue are dropped.
func (s *Sequencer) Enqueue(tokens ...string) int {
	accepted := 0
	for i, tok := range tokens {
		if tok == "" {
			s.log.Debug("skipping empty token")
			continue
		}
		if s.maxQueue > 0 && len(s.queue) >= s.maxQueue {
			s.log.Warn("queue full, dropping tokens",
				slog.Int("max_queue", s.maxQueue),
				slog.Int("dropped", len(tokens)-i))
			break
		}
		s.queue = append(s.queue, tok)
		accepted++
	}
	return accepted
}

// Tick advances playback to wall-clock time now. It starts the next queued
// token when idle, and ends the current slot once now reaches its end time,
// returning both hands to rest when nothing is left.
func (s *Sequencer) Tick(now time.Time) {
	if !s.playing && len(s.queue) > 0 {
		tok := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue[len(s.queue)-1] = ""
		s.queue = s.queue[:len(s.queue)-1]
		s.begin(tok, now)
	}

	if s.playing && !now.Before(s.endsAt) {
		s.playing = false
		s.emit(SignEvent{Kind: SignFinished, Token: s.token, Sign: s.sign, Letter: isLetter(s.token), At: now})
		if len(s.queue) == 0 {
			s.token = ""
			s.sign = ""
			s.left.TriggerGesture(StateIdle)
			s.right.TriggerGesture(StateIdle)
			s.emit(SignEvent{Kind: QueueDrained, At: now})
		}
	}
}

// begin starts the slot for tok.
func (s *Sequencer) begin(tok string, now time.Time) {
	var dur time.Duration
	ch, letter := ParseLetterToken(tok)
	if letter {
		dur = s.letterDur
		if curls, ok := LookupPose(ch); ok {
			s.right.ApplyNamedPose(curls)
			s.left.TriggerGesture(StateIdle)
		} else {
			s.log.Debug("no handshape for letter", slog.String("token", tok))
		}
		s.sign = string(unicode.ToUpper(ch))
	} else {
		dur = s.wordDur
		s.left.TriggerGesture(tok)
		s.right.TriggerGesture(tok)
		s.sign = tok
	}

	s.token = tok
	s.playing = true
	s.endsAt = now.Add(dur)
	s.emit(SignEvent{Kind: SignStarted, Token: tok, Sign: s.sign, Letter: letter, At: now})
}

func (s *Sequencer) emit(e SignEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

func isLetter(tok string) bool {
	_, ok := ParseLetterToken(tok)
	return ok
}

// Playing reports whether a slot is in progress.
func (s *Sequencer) Playing() bool { return s.playing }

// Sign returns the text of the sign being shown, or "" when idle.
func (s *Sequencer) Sign() string { return s.sign }

// Token returns the token of the current or most recent slot, or "" after
// the queue drains.
func (s *Sequencer) Token() string { return s.token }

// EndsAt returns the wall-clock end of the current slot.
func (s *Sequencer) EndsAt() time.Time { return s.endsAt }

// Pending returns the number of queued tokens not yet started.
func (s *Sequencer) Pending() int { return len(s.queue) }
