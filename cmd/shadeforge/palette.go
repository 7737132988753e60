package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/shadeforge/internal/color"
	"github.com/alexisbeaulieu97/shadeforge/internal/palette"
	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	"github.com/alexisbeaulieu97/shadeforge/internal/ui/swatch"
)

type paletteOptions struct {
	format   string
	layout   string
	contrast bool
	names    []string
}

// namedPalette is one seed's ramp as printed by the palette command.
type namedPalette struct {
	Name    string          `json:"name" yaml:"name"`
	Seed    string          `json:"seed" yaml:"seed"`
	HSL     [3]float64      `json:"hsl" yaml:"hsl,flow"`
	Palette palette.Palette `json:"shades" yaml:"shades"`
}

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <seed>...",
		Short: "Print the 50-950 shade ramp for one or more seed colors",
		Long: `Print the 50-950 shade ramp for each seed. A seed is a hex color
(#6366f1 or 6366f1) or a preset name such as indigo or slate.`,
		Example: `  shadeforge palette indigo
  shadeforge palette "#0ea5e9" --format json
  shadeforge palette rose stone --format css --name brand --name surface`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.newLogger(cmd)
			if err != nil {
				return err
			}

			if err := validateNames(opts.names); err != nil {
				log.Error(err, "palette name rejected")
				return newCommandError("generate palette", "checking --name values", err, "Names become part of CSS custom property names; use letters, digits, '-' or '_'.")
			}

			named, err := resolvePalettes(args, opts.names)
			if err != nil {
				log.Error(err, "seed rejected")
				return newCommandError("generate palette", "resolving seed colors", err, "Use a 6-digit hex color like #6366f1 or run 'shadeforge presets' for preset names.")
			}
			log.Debug("palettes generated", map[string]any{"count": len(named)})

			return renderPalettes(cmd.OutOrStdout(), named, opts, !isTerminal(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json, yaml or css")
	cmd.Flags().StringVar(&opts.layout, "layout", "column", "Table layout: column or row")
	cmd.Flags().BoolVar(&opts.contrast, "contrast", false, "Pick label colors by WCAG contrast and print each ratio")
	cmd.Flags().StringArrayVar(&opts.names, "name", nil, "Name for the corresponding seed (repeatable)")

	return cmd
}

func resolvePalettes(seeds, names []string) ([]namedPalette, error) {
	if len(names) > len(seeds) {
		return nil, fmt.Errorf("%d names given for %d seeds", len(names), len(seeds))
	}

	out := make([]namedPalette, 0, len(seeds))
	for i, arg := range seeds {
		seed, err := theme.ResolveSeed(arg)
		if err != nil {
			return nil, err
		}

		hsl := seed.HSL().Round()
		out = append(out, namedPalette{
			Name:    paletteName(i, arg, names, len(seeds)),
			Seed:    seed.String(),
			HSL:     [3]float64{hsl.H, hsl.S, hsl.L},
			Palette: palette.Generate(seed),
		})
	}
	return out, nil
}

func validateNames(names []string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := stylesheet.ValidateRole(strings.TrimSpace(name)); err != nil {
			return err
		}
	}
	return nil
}

func paletteName(i int, arg string, names []string, total int) string {
	if i < len(names) && strings.TrimSpace(names[i]) != "" {
		return strings.TrimSpace(names[i])
	}
	if preset, err := theme.PresetByName(arg); err == nil {
		return preset.Name
	}
	if total == 1 {
		return "primary"
	}
	return fmt.Sprintf("color%d", i+1)
}

func renderPalettes(w io.Writer, named []namedPalette, opts *paletteOptions, plain bool) error {
	switch strings.ToLower(opts.format) {
	case "table", "":
		layout := swatch.LayoutColumn
		switch strings.ToLower(opts.layout) {
		case "column", "":
		case "row":
			layout = swatch.LayoutRow
		default:
			return fmt.Errorf("unknown layout %q (want column or row)", opts.layout)
		}

		blocks := make([]string, 0, len(named))
		for _, n := range named {
			blocks = append(blocks, swatch.Render(n.Palette, swatch.Options{
				Layout:   layout,
				Title:    fmt.Sprintf("%s %s %s", n.Name, n.Seed, color.HSL{H: n.HSL[0], S: n.HSL[1], L: n.HSL[2]}),
				Contrast: opts.contrast,
				Plain:    plain,
			}))
		}
		_, err := fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
		return err

	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(named)

	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(named); err != nil {
			return err
		}
		return encoder.Close()

	case "css":
		for i, n := range named {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for _, d := range stylesheet.PaletteDeclarations(n.Name, n.Palette) {
				if _, err := fmt.Fprintln(w, d.String()); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want table, json, yaml or css)", opts.format)
	}
}
