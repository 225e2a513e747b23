package signhands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.LetterDuration() != 800*time.Millisecond {
		t.Errorf("letter = %v", cfg.LetterDuration())
	}
	if cfg.WordDuration() != 1500*time.Millisecond {
		t.Errorf("word = %v", cfg.WordDuration())
	}
	assertNear(t, "smoothing", cfg.Smoothing, 0.25)
	assertVec(t, "tilt", cfg.Tilt(), DefaultPoseTilt)
	if cfg.MaxQueue != 0 {
		t.Errorf("MaxQueue = %d, want unbounded", cfg.MaxQueue)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
letter_ms: 500
word_ms: 1000
max_queue: 16
feed:
  addr: "127.0.0.1:9000"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.LetterMillis != 500 || cfg.WordMillis != 1000 || cfg.MaxQueue != 16 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Feed.Addr != "127.0.0.1:9000" {
		t.Errorf("feed addr = %q", cfg.Feed.Addr)
	}
	// Untouched keys keep their defaults.
	assertNear(t, "smoothing", cfg.Smoothing, DefaultSmoothing)
	if cfg.Feed.Buffer != 64 {
		t.Errorf("feed buffer = %d, want 64", cfg.Feed.Buffer)
	}
	if cfg.CaptionFadeMillis != 250 {
		t.Errorf("caption fade = %d, want 250", cfg.CaptionFadeMillis)
	}
}

func TestParseConfigPoseTilt(t *testing.T) {
	cfg, err := ParseConfig([]byte("pose_tilt: [0.1, 0.2, 0.3]\n"))
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "tilt", cfg.Tilt(), Vec3{0.1, 0.2, 0.3})
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero smoothing", "smoothing: 0\n", "smoothing"},
		{"smoothing above one", "smoothing: 1.5\n", "smoothing"},
		{"zero letter", "letter_ms: 0\n", "positive"},
		{"letter not shorter", "letter_ms: 2000\nword_ms: 1000\n", "shorter"},
		{"negative queue", "max_queue: -1\n", "max_queue"},
		{"negative fade", "caption_fade_ms: -5\n", "caption_fade_ms"},
		{"negative buffer", "feed:\n  buffer: -1\n", "feed.buffer"},
		{"malformed", "letter_ms: [\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signhands.yaml")
	if err := os.WriteFile(path, []byte("word_ms: 2000\ndebug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WordMillis != 2000 || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("err = %v", err)
	}
}
