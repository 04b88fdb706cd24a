package config

import (
	"fmt"
	"path/filepath"
)

const (
	// LogFormatPlain is a format for colored text.
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output.
	LogFormatJSON = "json"

	// OutputText prints the bare address.
	OutputText = "text"
	// OutputJSON prints {"address": "..."}.
	OutputJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"

	// DefaultMaxInputBytes bounds key files read by the derive command.
	DefaultMaxInputBytes = 1 << 20
)

var (
	DefaultAddrgenDir = ".addrgen"
	DefaultConfigDir  = "config"

	DefaultConfigFileName = "config.toml"

	defaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

// Config defines the top level configuration for addrgen.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	// Options for address derivation
	Derive *DeriveConfig `mapstructure:"derive"`
}

// DefaultConfig returns a default configuration for addrgen.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Derive:     DefaultDeriveConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing.
func TestConfig() *Config {
	return &Config{
		BaseConfig: TestBaseConfig(),
		Derive:     TestDeriveConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs.
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if cfg.Derive == nil {
		return ErrInSection{Section: "derive", Err: ErrMissingSection}
	}
	if err := cfg.Derive.ValidateBasic(); err != nil {
		return ErrInSection{Section: "derive", Err: err}
	}
	return nil
}

// -----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for addrgen.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// Colored log output. Only applies to the 'plain' format
	LogColors bool `mapstructure:"log_colors"`

	// Address output format: 'text' or 'json'
	Output string `mapstructure:"output"`
}

// DefaultBaseConfig returns a default base configuration for addrgen.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
		LogColors: true,
		Output:    OutputText,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.LogLevel = "error"
	cfg.LogColors = false
	return cfg
}

// ConfigFile returns the full path to the config.toml file.
func (cfg BaseConfig) ConfigFile() string {
	return rootify(defaultConfigFilePath, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return ErrUnknownOutput
	}
	if cfg.LogLevel == "" {
		return ErrEmptyLogLevel
	}
	return nil
}

// -----------------------------------------------------------------------------
// DeriveConfig

// DeriveConfig defines the configuration options for the derive command.
type DeriveConfig struct {
	// Maximum size in bytes of a key file read with --file
	MaxInputBytes int64 `mapstructure:"max_input_bytes"`
}

// DefaultDeriveConfig returns a default configuration for the derive command.
func DefaultDeriveConfig() *DeriveConfig {
	return &DeriveConfig{
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

// TestDeriveConfig returns a configuration for testing the derive command.
func TestDeriveConfig() *DeriveConfig {
	cfg := DefaultDeriveConfig()
	cfg.MaxInputBytes = 4096
	return cfg
}

// ValidateBasic performs basic validation.
func (cfg *DeriveConfig) ValidateBasic() error {
	if cfg.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive, got %d", cfg.MaxInputBytes)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir.
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
