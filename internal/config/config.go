// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads default settings for the qr and qrd commands
// from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrsym/coding"
)

// Config holds settings shared by the commands.  Command line flags
// override them.
type Config struct {
	Level    string `yaml:"level"`     // error correction level, l|m|q|h
	Mode     string `yaml:"mode"`      // auto, numeric, alphanumeric or byte
	Version  int    `yaml:"version"`   // QR version, 0 for auto
	Border   int    `yaml:"border"`    // quiet zone modules
	Format   string `yaml:"format"`    // qr output format, empty for auto
	Charset  string `yaml:"charset"`   // qr input charset
	LogLevel string `yaml:"log_level"` // debug, info, warn or error

	Listen string `yaml:"listen"` // qrd listen address
	Store  string `yaml:"store"`  // qrd symbol store file, empty for none
}

// Output formats and input charsets.
var (
	Formats  = []string{"utf8", "utf8i", "ascii", "asciii", "bits"}
	Charsets = []string{"utf8", "latin1", "utf16"}
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Level:    "m",
		Mode:     "auto",
		Border:   4,
		Charset:  "utf8",
		LogLevel: "info",
		Listen:   "localhost:8080",
	}
}

// Parse reads settings from YAML data on top of the defaults.
// Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Load reads settings from the file at path.  An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := c.QRLevel(); err != nil {
		return fmt.Errorf("config: level %q: %w", c.Level, err)
	}
	if _, _, err := c.QRMode(); err != nil {
		return fmt.Errorf("config: mode %q: %w", c.Mode, err)
	}
	if v := coding.Version(c.Version); v != 0 && !v.IsValid() {
		return fmt.Errorf("config: version %d: %w", c.Version, coding.ErrVersion)
	}
	if c.Border < 0 {
		return fmt.Errorf("config: negative border %d", c.Border)
	}
	if c.Format != "" && !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if !slices.Contains(Charsets, c.Charset) {
		return fmt.Errorf("config: unknown charset %q", c.Charset)
	}
	if _, err := c.LoggerLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// QRLevel returns the error correction level.
func (c Config) QRLevel() (coding.Level, error) { return coding.ParseLevel(c.Level) }

// QRMode returns the encoding mode, or auto set if the text is to be
// split into segments automatically.
func (c Config) QRMode() (mode coding.Mode, auto bool, err error) {
	if c.Mode == "auto" || c.Mode == "" {
		return 0, true, nil
	}
	mode, err = coding.ParseMode(c.Mode)
	return mode, false, err
}

// LoggerLevel returns the log level.
func (c Config) LoggerLevel() (log.Level, error) { return log.ParseLevel(c.LogLevel) }
