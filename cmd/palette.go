package cmd

import (
	"fmt"

	"token-bridge/core/palette"
	palettefeature "token-bridge/feature/palette"

	"github.com/spf13/cobra"
)

var (
	paletteHarmony string
	paletteFormat  string
)

// paletteCmd generates a palette from a seed color.
var paletteCmd = &cobra.Command{
	Use:   "palette <seed>",
	Short: "Generate a color palette from a seed color",
	Long: `Generates primary, secondary, accent and neutral shade scales plus
semantic colors from a #RRGGBB seed.

Examples:
  token-bridge palette "#6366f1"
  token-bridge palette "#6366f1" --harmony triadic --format css`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		harmony, err := palette.ParseHarmony(paletteHarmony)
		if err != nil {
			return err
		}

		p, err := palette.GenerateFullPalette(args[0], harmony)
		if err != nil {
			return err
		}

		if paletteFormat == "table" {
			renderPaletteTable(cmd.OutOrStdout(), p)
			return nil
		}

		format, err := palettefeature.ParseFormat(paletteFormat)
		if err != nil {
			return err
		}
		out, err := palettefeature.Export(p, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	RootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVar(&paletteHarmony, "harmony", string(palette.HarmonyComplementary), "Harmony (complementary, analogous, triadic, split-complementary)")
	paletteCmd.Flags().StringVar(&paletteFormat, "format", "table", "Output format (table, json, css, scss, tokens)")
}
