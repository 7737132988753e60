package config

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	sferrors "github.com/alexisbeaulieu97/shadeforge/pkg/errors"
)

// Settings resolves the config into a theme snapshot, filling unset fields
// from theme.DefaultSettings.
func (c *Config) Settings() (theme.Settings, error) {
	s := theme.DefaultSettings()

	primary, err := theme.ResolveSeed(c.Primary)
	if err != nil {
		return theme.Settings{}, sferrors.NewValidationError("config.primary", fmt.Sprintf("invalid seed %q", c.Primary), err)
	}
	neutral, err := theme.ResolveSeed(c.Neutral)
	if err != nil {
		return theme.Settings{}, sferrors.NewValidationError("config.neutral", fmt.Sprintf("invalid seed %q", c.Neutral), err)
	}
	s = s.WithPrimary(primary).WithNeutral(neutral)

	if strings.TrimSpace(c.Appearance) != "" {
		appearance, err := theme.ParseAppearance(c.Appearance)
		if err != nil {
			return theme.Settings{}, sferrors.NewValidationError("config.appearance", err.Error(), err)
		}
		s = s.WithAppearance(appearance)
	}
	if strings.TrimSpace(c.Font) != "" {
		s = s.WithFontFamily(c.Font)
	}
	if c.Radius != nil {
		s = s.WithRadius(*c.Radius)
	}

	if err := s.Validate(); err != nil {
		return theme.Settings{}, sferrors.NewValidationError("config", err.Error(), err)
	}
	return s, nil
}

// StylesheetOptions returns the rendering options selected by the config.
func (c *Config) StylesheetOptions() (stylesheet.Options, error) {
	block, err := stylesheet.ParseBlock(c.Output.Block)
	if err != nil {
		return stylesheet.Options{}, sferrors.NewValidationError("config.output.block", err.Error(), err)
	}
	return stylesheet.Options{Block: block}, nil
}
