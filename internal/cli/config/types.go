// Package config provides configuration management for the gentable CLI.
//
// Values are layered, highest priority first: explicitly set flags,
// GENTABLE_* environment variables, the config file (gentable.yaml) and
// built-in defaults.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gentable/internal/table"
)

// Defaults.
const (
	DefaultOut    = "-"
	DefaultIndent = table.DefaultIndent
	DefaultStyle  = "cpp"

	// GeneratedHeader is emitted before all tables when Header is set.
	GeneratedHeader = "// Code generated by gentable. DO NOT EDIT."
)

// Config holds all CLI configuration options.
type Config struct {
	// Definitions is a YAML definition file; empty selects the built-in tables.
	Definitions string `koanf:"definitions"`
	// Tables restricts output to the named tables, in definition order.
	Tables []string `koanf:"tables"`
	// Out is the output file; "-" writes to stdout.
	Out         string `koanf:"out"`
	Indent      string `koanf:"indent"`
	Style       string `koanf:"style"`
	Comments    bool   `koanf:"comments"`
	Header      bool   `koanf:"header"`
	Concurrency int    `koanf:"concurrency"`
	Verbose     bool   `koanf:"verbose"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Validate checks option values that cannot be expressed in flag types.
func (c *Config) Validate() error {
	if _, err := table.ParseStyle(c.Style); err != nil {
		return err
	}

	if c.Indent == "" || strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent must be one or more spaces or tabs, got %q", c.Indent)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, got %d", c.Concurrency)
	}

	return nil
}

// LeafStyle returns the parsed Style. Call Validate first.
func (c *Config) LeafStyle() table.Style {
	s, _ := table.ParseStyle(c.Style)
	return s
}

type configKey struct{}

type loggerKey struct{}

// WithContext stores the config and logger for commands to retrieve.
func WithContext(ctx context.Context, cfg *Config, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the config from the command context, or the
// defaults if none was stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}

	return &Config{
		Out:    DefaultOut,
		Indent: DefaultIndent,
		Style:  DefaultStyle,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.New(slog.DiscardHandler)
}
