package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the log level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.OutputFormat = format
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithUnicode enables chess glyphs in diagrams.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Unicode = enabled
	return b
}

// WithInteractive enables terminal play, optionally with sound.
func (b *ConfigBuilder) WithInteractive(enabled, sound bool) *ConfigBuilder {
	b.cfg.Interactive = enabled
	b.cfg.Sound = sound
	return b
}

// WithVolume sets the sound volume.
func (b *ConfigBuilder) WithVolume(volume float64) *ConfigBuilder {
	b.cfg.Volume = volume
	return b
}

// WithDuplicateDetection configures duplicate final position detection.
func (b *ConfigBuilder) WithDuplicateDetection(exact bool, capacity int) *ConfigBuilder {
	b.cfg.DuplicateExact = exact
	b.cfg.DuplicateCapacity = capacity
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
