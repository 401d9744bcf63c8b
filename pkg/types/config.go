// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ServerConfig holds settings for the local app server.
type ServerConfig struct {
	// Addr is the listen address. The default binds loopback only; this is
	// a single-user desktop surface, not a network service.
	Addr string `json:"addr" yaml:"addr"`

	// OpenBrowser controls whether serve opens the UI page on startup.
	OpenBrowser bool `json:"open_browser" yaml:"open_browser"`
}

// ConverterConfig holds settings for locating the external converter.
type ConverterConfig struct {
	// Command overrides converter detection with an explicit executable.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// Python is the interpreter used for the module fallback (default python3).
	Python string `json:"python,omitempty" yaml:"python,omitempty"`
}

// AppConfig groups all configuration for the application.
type AppConfig struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Converter ConverterConfig `json:"converter" yaml:"converter"`

	// DataDir holds the history database and the presets directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}
