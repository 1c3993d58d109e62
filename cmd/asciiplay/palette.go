package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/palette"
)

func (a *app) newPaletteCmd() *cobra.Command {
	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect glyph palettes",
		Args:  cobra.NoArgs,
	}

	paletteCmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for palette files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(palette.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}

			out = append(out, '\n')

			_, err = a.stdout.Write(out)

			return err
		},
	})

	paletteCmd.AddCommand(&cobra.Command{
		Use:   "show [palette.yaml]",
		Short: "Print a palette file, or the built-in palette, after validation",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p := palette.Default()

			if len(args) == 1 {
				var err error

				p, err = palette.Load(args[0])
				if err != nil {
					return err
				}
			}

			out, err := p.YAML()
			if err != nil {
				return fmt.Errorf("encoding palette: %w", err)
			}

			_, err = a.stdout.Write(out)

			return err
		},
	})

	return paletteCmd
}
