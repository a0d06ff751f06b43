// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "errors"

// Config holds the settings read from config.yaml.
type Config struct {
	LogLevel string    `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Grouping bool      `json:"grouping" yaml:"grouping" mapstructure:"grouping"`
	GUI      GUIConfig `json:"gui" yaml:"gui" mapstructure:"gui"`
}

// GUIConfig holds settings for the graphical view.
type GUIConfig struct {
	Scale int `json:"scale" yaml:"scale" mapstructure:"scale"`
}

// Log levels accepted in config.yaml.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Defaults applied when config.yaml omits a key.
const (
	DefaultLogLevel = LogLevelInfo
	DefaultGUIScale = 2
)

// Config validation errors.
var (
	ErrLogLevelUnknown = errors.New("unknown log level")
	ErrScaleInvalid    = errors.New("gui scale must be between 1 and 8")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the configuration used when no config.yaml exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		GUI:      GUIConfig{Scale: DefaultGUIScale},
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.GUI.Scale < 1 || c.GUI.Scale > 8 {
		return ErrScaleInvalid
	}
	return nil
}
