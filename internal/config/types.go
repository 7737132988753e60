package config

import (
	"path/filepath"
	"strings"
)

// CurrentVersion is the only theme file schema version understood.
const CurrentVersion = "1"

// Config is a theme file. Seeds may be hex colors or preset names.
type Config struct {
	Version    string `yaml:"version" toml:"version" validate:"required,eq=1"`
	Name       string `yaml:"name,omitempty" toml:"name" validate:"omitempty,max=100"`
	Primary    string `yaml:"primary" toml:"primary" validate:"required,seed_color"`
	Neutral    string `yaml:"neutral" toml:"neutral" validate:"required,seed_color"`
	Appearance string `yaml:"appearance,omitempty" toml:"appearance" validate:"omitempty,oneof=light dark"`
	Font       string `yaml:"font,omitempty" toml:"font" validate:"omitempty,font_family"`
	Radius     *int   `yaml:"radius,omitempty" toml:"radius" validate:"omitempty,min=0,max=999"`
	Output     Output `yaml:"output,omitempty" toml:"output"`

	// Source is the file the config was read from, if any.
	Source string `yaml:"-" toml:"-"`
}

// Output says where and how the generated stylesheet is written.
type Output struct {
	Path  string `yaml:"path,omitempty" toml:"path" validate:"omitempty,endswith=.css"`
	Block string `yaml:"block,omitempty" toml:"block" validate:"omitempty,css_block"`
}

// OutputPath resolves Output.Path against the directory of Source.
func (c *Config) OutputPath() string {
	p := strings.TrimSpace(c.Output.Path)
	if p == "" || filepath.IsAbs(p) || c.Source == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.Source), p)
}
