package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shadeforge/internal/config"
	"github.com/alexisbeaulieu97/shadeforge/internal/logger"
	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	"github.com/alexisbeaulieu97/shadeforge/internal/watch"
	"github.com/alexisbeaulieu97/shadeforge/pkg/diff"
	sferrors "github.com/alexisbeaulieu97/shadeforge/pkg/errors"
)

type cssOptions struct {
	configPath string
	primary    string
	neutral    string
	font       string
	radius     int
	block      string
	out        string
	check      bool
	watch      bool
	copy       bool
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func newCSSCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Generate the CSS theme variables for a primary and neutral seed",
		Long: `Generate a stylesheet of CSS custom properties: eleven primary shades,
eleven neutral shades, the font stack and the border radius.

Settings come from --config when given, then from flags, then from defaults.
The stylesheet does not depend on appearance; set it in the theme file for
the playground preview.`,
		Example: `  shadeforge css --primary rose --neutral stone
  shadeforge css --config theme.yaml --out src/styles/theme.css
  shadeforge css --config theme.yaml --check
  shadeforge css --config theme.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootFlags.newLogger(cmd)
			if err != nil {
				return err
			}
			return runCSS(cmd, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Theme file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "Primary seed: hex color or preset name")
	cmd.Flags().StringVar(&opts.neutral, "neutral", "", "Neutral seed: hex color or preset name")
	cmd.Flags().StringVar(&opts.font, "font", "", "Font family for --font-sans")
	cmd.Flags().IntVar(&opts.radius, "radius", theme.DefaultRadiusPx, "Border radius in pixels")
	cmd.Flags().StringVar(&opts.block, "block", "", "Wrapping block: theme (@theme) or root (:root)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the stylesheet to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the output file differs from the generated stylesheet")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever the config file changes")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the stylesheet to the clipboard")

	return cmd
}

func runCSS(cmd *cobra.Command, opts *cssOptions, log *logger.Logger) error {
	if opts.check && opts.watch {
		return newCommandError("generate stylesheet", "validating flags", errors.New("--check and --watch cannot be combined"), "Run the check and the watcher separately.")
	}

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		log.Error(err, "theme rejected")
		return newCommandError("generate stylesheet", "loading theme settings", err, "Check the seed colors and flags, or run 'shadeforge presets' for valid preset names.")
	}
	styleOpts, err := cfg.StylesheetOptions()
	if err != nil {
		return newCommandError("generate stylesheet", "reading output options", err, "Use --block theme or --block root.")
	}

	if opts.watch {
		return runCSSWatch(cmd, opts, cfg, styleOpts, log)
	}

	settings, err := cfg.Settings()
	if err != nil {
		return newCommandError("generate stylesheet", "resolving theme settings", err, "Check the seed colors in the theme file.")
	}
	t, err := theme.Derive(settings)
	if err != nil {
		return newCommandError("generate stylesheet", "deriving palettes", err, "Check the seed colors in the theme file.")
	}
	css := t.Stylesheet(styleOpts)
	out := cfg.OutputPath()

	if opts.check {
		return checkStylesheet(cmd.OutOrStdout(), out, css, log)
	}

	if opts.copy {
		if err := copyToClipboard(css); err != nil {
			return newCommandError("copy stylesheet", "writing to the clipboard", err, "Write to a file with --out instead.")
		}
		log.Info("stylesheet copied to clipboard")
	}

	if out == "" {
		if opts.copy {
			return nil
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), css)
		return err
	}

	if err := writeStylesheet(out, css); err != nil {
		return newCommandError("write stylesheet", out, err, "Check that the output directory is writable.")
	}
	log.Info("stylesheet written", map[string]any{"path": out})
	return nil
}

// buildConfig loads --config when set and layers explicitly set flags on
// top, so flags and files share one validation path.
func buildConfig(cmd *cobra.Command, opts *cssOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.configPath != "" {
		loaded, err := config.ParseConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.Config{
			Version: config.CurrentVersion,
			Primary: theme.DefaultPrimary,
			Neutral: theme.DefaultNeutral,
		}
	}

	flags := cmd.Flags()
	if opts.watch {
		if opts.configPath == "" {
			return nil, errors.New("--watch requires --config")
		}
		for _, name := range []string{"primary", "neutral", "font", "radius"} {
			if flags.Changed(name) {
				return nil, fmt.Errorf("--%s cannot be combined with --watch; edit the theme file instead", name)
			}
		}
	}

	if flags.Changed("primary") {
		cfg.Primary = opts.primary
	}
	if flags.Changed("neutral") {
		cfg.Neutral = opts.neutral
	}
	if flags.Changed("font") {
		cfg.Font = opts.font
	}
	if flags.Changed("radius") {
		radius := opts.radius
		cfg.Radius = &radius
	}
	if flags.Changed("block") {
		cfg.Output.Block = opts.block
	}
	if flags.Changed("out") {
		abs, err := filepath.Abs(opts.out)
		if err != nil {
			return nil, fmt.Errorf("resolve output path: %w", err)
		}
		cfg.Output.Path = abs
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkStylesheet(w io.Writer, path, css string, log *logger.Logger) error {
	if path == "" {
		return newCommandError("check stylesheet", "locating output file", errors.New("no output path"), "Pass --out or set output.path in the theme file.")
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check stylesheet", path, err, "Generate the file first with --out.")
	}

	current := strings.TrimRight(string(existing), "\n")
	if current == css {
		log.Info("stylesheet up to date", map[string]any{"path": path})
		fmt.Fprintf(w, "%s is up to date\n", path)
		return nil
	}

	unified := diff.Unified(current, css, path, "generated")
	added, removed := diff.Stats(current, css)
	log.Warn("stylesheet drift detected", map[string]any{"path": path, "added": added, "removed": removed})
	fmt.Fprint(w, unified)

	return newCommandError("check stylesheet", path, sferrors.NewDriftError(path, unified), "Regenerate it with 'shadeforge css --out "+path+"'.")
}

func runCSSWatch(cmd *cobra.Command, opts *cssOptions, cfg *config.Config, styleOpts stylesheet.Options, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outOverride := ""
	if cmd.Flags().Changed("out") {
		outOverride = cfg.Output.Path
	}
	blockOverride := cmd.Flags().Changed("block")

	w := watch.New(opts.configPath, func(u watch.Update) error {
		renderOpts := styleOpts
		if !blockOverride {
			fileOpts, err := u.Config.StylesheetOptions()
			if err != nil {
				return err
			}
			renderOpts = fileOpts
		}

		css := u.Theme.Stylesheet(renderOpts)
		out := outOverride
		if out == "" {
			out = u.Config.OutputPath()
		}
		if out == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		}
		if err := writeStylesheet(out, css); err != nil {
			return err
		}
		log.Info("stylesheet written", map[string]any{"path": out})
		return nil
	}, watch.Options{Logger: log})

	if err := w.Run(ctx); err != nil {
		return newCommandError("watch theme", opts.configPath, err, "Fix the theme file and start the watcher again.")
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeStylesheet(path, css string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(css+"\n"), 0o644)
}
