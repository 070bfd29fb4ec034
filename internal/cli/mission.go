package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/missionfuel/internal/config"
	"github.com/danieljhkim/missionfuel/internal/engine"
)

func newMissionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mission <mass> [action:body...]",
		Aliases: []string{"calc"},
		Short:   "Calculate the fuel for a whole mission",
		Long: `Calculate the fuel required to fly a mission.

The mass is the dry mass of the ship in kilograms. Each step is an action
(launch or land) and a body separated by a colon, listed in the order they
are flown.`,
		Example: `  missionfuel mission 28801 launch:earth land:moon launch:moon land:earth
  missionfuel mission 14606 launch:earth land:mars launch:mars land:earth --format simple`,
		Args: cobra.MinimumNArgs(1),
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

			result, err := a.engine.Mission(a.context(cmd), &engine.MissionRequest{
				Mass:  mass,
				Steps: args[1:],
			})
			if err != nil {
				return err
			}

			return renderMission(cmd.OutOrStdout(), format, result)
		},
	}
	cmd.Flags().String("format", config.FormatTable, "Output format: table, json or simple")
	cmd.SetFlagErrorFunc(negativeMassFlagError)
	return cmd
}

func renderMission(w io.Writer, format string, result *engine.MissionResult) error {
	switch format {
	case config.FormatJSON:
		return outputJSON(w, result)
	case config.FormatSimple:
		_, err := fmt.Fprintln(w, result.TotalFuel)
		return err
	}

	PrintSection(w, "Mission fuel")
	PrintLabelValue(w, "Dry mass", formatMass(result.Mass)+" kg")
	PrintLabelValue(w, "Steps", strconv.Itoa(len(result.Legs)))
	_, _ = fmt.Fprintln(w)

	rows := make([][]string, 0, len(result.Legs))
	for _, leg := range result.Legs {
		rows = append(rows, []string{
			strconv.Itoa(leg.Index + 1),
			string(leg.Step.Action),
			leg.Step.Body,
			formatMass(leg.Mass),
			strconv.FormatInt(leg.Base, 10),
			strconv.FormatInt(leg.Carry, 10),
			strconv.FormatInt(leg.Fuel, 10),
		})
	}
	PrintTable(w, []string{"#", "ACTION", "BODY", "MASS", "BASE", "CARRY", "FUEL"}, rows, 0, 3, 4, 5, 6)
	if len(rows) > 0 {
		_, _ = fmt.Fprintln(w)
	}

	PrintTotal(w, "Total fuel", strconv.FormatInt(result.TotalFuel, 10)+" kg")
	return nil
}
