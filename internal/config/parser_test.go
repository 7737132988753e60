package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	sferrors "github.com/alexisbeaulieu97/shadeforge/pkg/errors"
)

const validYAML = `version: "1"
name: Acme
primary: "#4338CA"
neutral: stone
appearance: dark
font: Roboto
radius: 0
output:
  path: styles/theme.css
  block: root
`

const validTOML = `version = "1"
name = "Acme"
primary = "emerald"
neutral = "#71717a"
radius = 12

[output]
path = "theme.css"
`

func writeTheme(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfigYAML(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "theme.yaml", validYAML)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Name)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "styles", "theme.css"), cfg.OutputPath())

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "#4338ca", s.Primary().String())
	assert.Equal(t, "#78716c", s.Neutral().String())
	assert.Equal(t, theme.AppearanceDark, s.Appearance())
	assert.Equal(t, "Roboto", s.FontFamily())
	assert.Equal(t, 0, s.RadiusPx())

	opts, err := cfg.StylesheetOptions()
	require.NoError(t, err)
	assert.Equal(t, stylesheet.BlockRoot, opts.Block)
}

func TestParseConfigTOMLUsesDefaults(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "theme.toml", validTOML)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "#10b981", s.Primary().String())
	assert.Equal(t, "#71717a", s.Neutral().String())
	assert.Equal(t, theme.AppearanceLight, s.Appearance())
	assert.Equal(t, theme.DefaultFontFamily, s.FontFamily())
	assert.Equal(t, 12, s.RadiusPx())

	opts, err := cfg.StylesheetOptions()
	require.NoError(t, err)
	assert.Equal(t, stylesheet.BlockTheme, opts.Block)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		file      string
		contents  string
		wantField string
		wantParse bool
	}{
		{name: "malformed yaml", file: "t.yaml", contents: "version: [1\nprimary: x\n", wantParse: true},
		{name: "empty yaml", file: "t.yaml", contents: "", wantParse: true},
		{name: "malformed toml", file: "t.toml", contents: "version = \n", wantParse: true},
		{name: "unknown yaml field", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\nshadow: true\n", wantParse: true},
		{name: "unknown toml field", file: "t.toml", contents: "version = \"1\"\nprimary = \"indigo\"\nneutral = \"gray\"\nshadow = true\n", wantField: "shadow"},
		{name: "bad seed", file: "t.yaml", contents: "version: \"1\"\nprimary: notacolor\nneutral: gray\n", wantField: "config.primary"},
		{name: "missing neutral", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\n", wantField: "config.neutral"},
		{name: "wrong version", file: "t.yaml", contents: "version: \"2\"\nprimary: indigo\nneutral: gray\n", wantField: "config.version"},
		{name: "quoted font", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\nfont: \"O'Brien\"\n", wantField: "config.font"},
		{name: "negative radius", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\nradius: -2\n", wantField: "config.radius"},
		{name: "bad appearance", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\nappearance: sepia\n", wantField: "config.appearance"},
		{name: "bad block", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\noutput:\n  block: body\n", wantField: "config.output.block"},
		{name: "bad output path", file: "t.yaml", contents: "version: \"1\"\nprimary: indigo\nneutral: gray\noutput:\n  path: theme.scss\n", wantField: "config.output.path"},
		{name: "unsupported extension", file: "t.json", contents: "{}", wantField: "config"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTheme(t, tc.file, tc.contents)
			_, err := ParseConfig(path)
			require.Error(t, err)

			if tc.wantParse {
				var parseErr *sferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, path, parseErr.Path)
				return
			}

			var validationErr *sferrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestParseConfigReportsYAMLLine(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "theme.yaml", "version: \"1\"\nprimary: indigo\nneutral: [gray\n")
	_, err := ParseConfig(path)

	var parseErr *sferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Greater(t, parseErr.Line, 0)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *sferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsThemeFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsThemeFile("a/theme.YAML"))
	assert.True(t, IsThemeFile("theme.yml"))
	assert.True(t, IsThemeFile("theme.toml"))
	assert.False(t, IsThemeFile("theme.css"))
}

func TestOutputPathKeepsAbsolute(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "out.css")
	cfg := &Config{Source: "/somewhere/theme.yaml", Output: Output{Path: abs}}
	assert.Equal(t, abs, cfg.OutputPath())

	cfg = &Config{Output: Output{Path: "rel.css"}}
	assert.Equal(t, "rel.css", cfg.OutputPath())
}

func TestParseConfigBundledExamples(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"theme.yaml", "theme.toml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)

			settings, err := cfg.Settings()
			require.NoError(t, err)
			_, err = theme.Derive(settings)
			require.NoError(t, err)
			assert.Equal(t, ".css", filepath.Ext(cfg.OutputPath()))
		})
	}
}
