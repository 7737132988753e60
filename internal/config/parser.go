// Package config loads theme files written in YAML or TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sferrors "github.com/alexisbeaulieu97/shadeforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig reads, decodes and validates the theme file at path. The
// format follows the extension: .yaml, .yml or .toml.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sferrors.NewParseError(path, 0, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes data using the format implied by name.
func Parse(name string, data []byte) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(name, data)
	case ".toml":
		cfg, err = decodeTOML(name, data)
	default:
		return nil, sferrors.NewValidationError("config", fmt.Sprintf("unsupported theme file extension %q", ext), nil)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsThemeFile reports whether path has a supported extension.
func IsThemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

func decodeYAML(name string, data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, sferrors.NewParseError(name, 0, errors.New("theme file is empty"))
		}
		return nil, sferrors.NewParseError(name, extractLine(err), err)
	}
	return &cfg, nil
}

func decodeTOML(name string, data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return nil, sferrors.NewParseError(name, line, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, sferrors.NewValidationError(undecoded[0].String(), "unknown field", nil)
	}
	return &cfg, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
