package signhands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds pacing and smoothing settings for an avatar.
type Config struct {
	LetterMillis      int        `yaml:"letter_ms"`       // fingerspelling slot length
	WordMillis        int        `yaml:"word_ms"`         // word slot length
	Smoothing         float64    `yaml:"smoothing"`       // per-tick interpolation factor
	MaxQueue          int        `yaml:"max_queue"`       // 0 = unbounded
	PoseTilt          [3]float64 `yaml:"pose_tilt"`       // fingerspelling wrist tilt, radians
	CaptionFadeMillis int        `yaml:"caption_fade_ms"` // caption fade-in length
	Debug             bool       `yaml:"debug"`
	Feed              FeedConfig `yaml:"feed"`

	// Logger receives warnings and debug stats. Nil means slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// FeedConfig configures the optional websocket token feed.
type FeedConfig struct {
	Addr   string `yaml:"addr"`
	Buffer int    `yaml:"buffer"`
}

// DefaultConfig returns the stock pacing: 800ms letters, 1.5s words.
func DefaultConfig() Config {
	return Config{
		LetterMillis:      800,
		WordMillis:        1500,
		Smoothing:         DefaultSmoothing,
		PoseTilt:          [3]float64{DefaultPoseTilt.X, DefaultPoseTilt.Y, DefaultPoseTilt.Z},
		CaptionFadeMillis: 250,
		Feed: FeedConfig{
			Addr:   ":8090",
			Buffer: 64,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Fields absent from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config describes a usable avatar.
func (c Config) Validate() error {
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("config: smoothing %v outside (0, 1]", c.Smoothing)
	}
	if c.LetterMillis <= 0 || c.WordMillis <= 0 {
		return fmt.Errorf("config: slot lengths must be positive (letter_ms=%d, word_ms=%d)", c.LetterMillis, c.WordMillis)
	}
	if c.LetterMillis >= c.WordMillis {
		return fmt.Errorf("config: letter_ms %d must be shorter than word_ms %d", c.LetterMillis, c.WordMillis)
	}
	if c.MaxQueue < 0 {
		return fmt.Errorf("config: max_queue %d is negative", c.MaxQueue)
	}
	if c.CaptionFadeMillis < 0 {
		return fmt.Errorf("config: caption_fade_ms %d is negative", c.CaptionFadeMillis)
	}
	if c.Feed.Buffer < 0 {
		return fmt.Errorf("config: feed.buffer %d is negative", c.Feed.Buffer)
	}
	return nil
}

// LetterDuration returns the fingerspelling slot length.
func (c Config) LetterDuration() time.Duration {
	return time.Duration(c.LetterMillis) * time.Millisecond
}

// WordDuration returns the word slot length.
func (c Config) WordDuration() time.Duration {
	return time.Duration(c.WordMillis) * time.Millisecond
}

// CaptionFade returns the caption fade-in length.
func (c Config) CaptionFade() time.Duration {
	return time.Duration(c.CaptionFadeMillis) * time.Millisecond
}

// Tilt returns PoseTilt as a vector.
func (c Config) Tilt() Vec3 {
	return Vec3{c.PoseTilt[0], c.PoseTilt[1], c.PoseTilt[2]}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
