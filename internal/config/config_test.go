package config

import (
	"bytes"
	"errors"
	"testing"

	cerrors "github.com/lgbarn/atomic-chess-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFormat != Diagram {
		t.Errorf("OutputFormat = %v, want diagram", cfg.OutputFormat)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Volume = %g, want 0.5", cfg.Volume)
	}
	if cfg.Interactive || cfg.Sound || cfg.Unicode {
		t.Error("Interactive, Sound and Unicode should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"diagram", Diagram, false},
		{"FEN", FEN, false},
		{"json", JSON, false},
		{"pgn", Diagram, true},
		{"", Diagram, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, cerrors.ErrInvalidConfig) {
					t.Errorf("ParseOutputFormat(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v, nil", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"unknown format", func(c *Config) { c.OutputFormat = OutputFormat(9) }},
		{"sound without interactive", func(c *Config) { c.Sound = true }},
		{"nil log", func(c *Config) { c.LogFile = nil }},
		{"volume above one", func(c *Config) { c.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Volume = -0.1 }},
		{"negative duplicate capacity", func(c *Config) { c.DuplicateCapacity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFile = &buf

	cfg.Logf(1, "rejected %s", "e2-e5")
	cfg.Logf(2, "commentary hidden at verbosity 1")

	if got, want := buf.String(), "rejected e2-e5\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	buf.Reset()
	cfg.Verbosity = 0
	cfg.Logf(1, "silent")
	if buf.Len() != 0 {
		t.Errorf("log at verbosity 0 = %q, want empty", buf.String())
	}
}
