package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
)

type presetsOptions struct {
	role       string
	jsonOutput bool
}

type presetJSON struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Value string `json:"value"`
}

type presetsPayload struct {
	Colors []presetJSON `json:"colors"`
	Fonts  []string     `json:"fonts"`
	Radius []int        `json:"radius"`
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset seed colors, fonts and radius options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.role, "role", "", "Only list color presets for this role: primary or neutral")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPresets(cmd *cobra.Command, opts *presetsOptions) error {
	var presets []theme.ColorPreset
	switch role := theme.Role(strings.ToLower(opts.role)); role {
	case "":
		presets = append(theme.PrimaryPresets(), theme.NeutralPresets()...)
	case theme.RolePrimary, theme.RoleNeutral:
		presets = theme.Presets(role)
	default:
		return newCommandError("list presets", "filtering by role", fmt.Errorf("unknown role %q", opts.role), "Use --role primary or --role neutral.")
	}

	if opts.jsonOutput {
		payload := presetsPayload{Fonts: theme.FontFamilies()}
		for _, p := range presets {
			payload.Colors = append(payload.Colors, presetJSON{Name: p.Name, Role: string(p.Role), Value: p.Value.String()})
		}
		for _, r := range theme.RadiusOptions() {
			payload.Radius = append(payload.Radius, r.Value)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ROLE\tNAME\tSEED")
	for _, p := range presets {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", p.Role, p.DisplayName(), p.Value)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	radius := make([]string, 0, len(theme.RadiusOptions()))
	for _, r := range theme.RadiusOptions() {
		radius = append(radius, r.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nFonts:  %s\n", strings.Join(theme.FontFamilies(), " | "))
	fmt.Fprintf(cmd.OutOrStdout(), "Radius: %s\n", strings.Join(radius, ", "))
	return nil
}
