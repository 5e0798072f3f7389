package core

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	DEFAULT_LOG_LEVEL  = "info"
	DEFAULT_LOG_PREFIX = "prism"
	DEFAULT_EPSILON    = 1e-9
)

// Settings are the tunables of the kernel. They are read from a TOML file:
//
//	log_level        = "debug"
//	log_prefix       = "prism"
//	epsilon          = 1e-9
//	strict_normalize = true
type Settings struct {
	LogLevel  string `toml:"log_level"`
	LogPrefix string `toml:"log_prefix"`
	// Epsilon is the tolerance used by comparisons that are not given one.
	Epsilon float64 `toml:"epsilon"`
	// StrictNormalize makes normalizing a zero-length tuple a fatal violation
	// instead of producing NaN components.
	StrictNormalize bool `toml:"strict_normalize"`
}

var current atomic.Pointer[Settings]

func init() {
	s := DefaultSettings()
	current.Store(&s)
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel:  DEFAULT_LOG_LEVEL,
		LogPrefix: DEFAULT_LOG_PREFIX,
		Epsilon:   DEFAULT_EPSILON,
	}
}

// ParseSettings decodes a TOML document on top of the defaults. Keys that are
// missing keep their default value; unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and parses the settings file at path.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, s.LogLevel)
	}
	if s.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must not be negative, got %g", ErrInvalidSettings, s.Epsilon)
	}
	return nil
}

// Marshal encodes the settings back to TOML.
func (s Settings) Marshal() ([]byte, error) {
	return toml.Marshal(s)
}

// ApplySettings validates s and makes it the active configuration.
func ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := SetLogLevel(s.LogLevel); err != nil {
		return err
	}
	SetLogPrefix(s.LogPrefix)
	current.Store(&s)
	return nil
}

// CurrentSettings returns a snapshot of the active configuration.
func CurrentSettings() Settings {
	return *current.Load()
}
