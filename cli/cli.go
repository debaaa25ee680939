package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"meteogram/config"
	"meteogram/manager"
	"meteogram/markup"
)

func New(meteogram manager.Meteogram, defaults config.Defaults) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           "meteogram",
		Short:         "CLI application for downloading meteograms from yr.no",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newFetchCommand(meteogram, defaults),
		newLocationCommand(meteogram),
	)

	return cmd, nil
}

func newFetchCommand(meteogram manager.Meteogram, defaults config.Defaults) *cobra.Command {
	var (
		request manager.Request
		output  string
	)

	cmd := &cobra.Command{
		Use:     "fetch <location-id>",
		Args:    cobra.ExactArgs(1),
		Short:   "Download a meteogram as svg",
		Example: "  meteogram fetch 1-72837 --dark --crop --transparent --unhide-dark -o oslo.svg",
		RunE: func(cmd *cobra.Command, args []string) error {
			request.LocationID = args[0]

			doc, err := meteogram.Get(cmd.Context(), request)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), doc.SVG)
				return err
			}

			if err = os.WriteFile(output, []byte(doc.SVG), 0o644); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "saved %s (%d bytes)\n", output, len(doc.SVG))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&request.Dark, "dark", defaults.Dark, "download the dark version")
	flags.BoolVar(&request.Crop, "crop", defaults.Crop, "crop the meteogram to the chart")
	flags.BoolVar(&request.Transparent, "transparent", defaults.Transparent, "remove the background color")
	flags.BoolVar(&request.UnhideDark, "unhide-dark", defaults.UnhideDark, "in the dark version, recolor details that render black on black")
	flags.StringVarP(&output, "output", "o", "", "write the svg to a file instead of stdout")

	return cmd
}

func newLocationCommand(meteogram manager.Meteogram) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "location [location-id]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Print the location name of a meteogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			var svg string

			switch {
			case file != "" && len(args) > 0:
				return fmt.Errorf("location id and --file are mutually exclusive")
			case file == "-":
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				svg = string(b)
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				svg = string(b)
			case len(args) == 1:
				doc, err := meteogram.Get(cmd.Context(), manager.Request{LocationID: args[0]})
				if err != nil {
					return err
				}
				svg = doc.SVG
			default:
				return fmt.Errorf("location id or --file is required")
			}

			name, err := markup.LocationName(svg)
			if err != nil {
				return fmt.Errorf("location name: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)

			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the svg from a file, - for stdin")

	return cmd
}
