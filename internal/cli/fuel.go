package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/missionfuel/internal/config"
	"github.com/danieljhkim/missionfuel/internal/engine"
)

func newFuelCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fuel <mass> <action> <body>",
		Short:   "Calculate the fuel for a single launch or landing",
		Example: "  missionfuel fuel 28801 land earth",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			format, err := a.outputFormat(cmd, opts)
			if err != nil {
				return err
			}

			mass, err := parseMass(args[0])
			if err != nil {
				return err
			}

			result, err := a.engine.Fuel(a.context(cmd), &engine.FuelRequest{
				Mass:   mass,
				Action: args[1],
				Body:   args[2],
			})
			if err != nil {
				return err
			}

			return renderFuel(cmd.OutOrStdout(), format, result)
		},
	}
	cmd.Flags().String("format", config.FormatTable, "Output format: table, json or simple")
	cmd.SetFlagErrorFunc(negativeMassFlagError)
	return cmd
}

func renderFuel(w io.Writer, format string, result *engine.FuelResult) error {
	switch format {
	case config.FormatJSON:
		return outputJSON(w, result)
	case config.FormatSimple:
		_, err := fmt.Fprintln(w, result.Fuel)
		return err
	}

	PrintSection(w, fmt.Sprintf("%s %s", result.Action, result.Body))
	PrintLabelValue(w, "Mass", formatMass(result.Mass)+" kg")
	PrintLabelValue(w, "Base fuel", strconv.FormatInt(result.Base, 10)+" kg")
	PrintLabelValue(w, "Fuel for fuel", strconv.FormatInt(result.Carry, 10)+" kg")
	PrintTotal(w, "Total fuel", strconv.FormatInt(result.Fuel, 10)+" kg")
	return nil
}
