package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newPlanetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "planets",
		Short: "List supported bodies and their gravity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			entries := a.engine.Planets(a.context(cmd))
			if opts.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Body, strconv.FormatFloat(e.Gravity, 'f', -1, 64)})
			}
			PrintTable(cmd.OutOrStdout(), []string{"BODY", "GRAVITY"}, rows, 1)
			return nil
		},
	}
}
