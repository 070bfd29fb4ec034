package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/missionfuel/internal/engine"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "validate [action:body...]",
		Short:   "Check that every step of a mission is supported",
		Long:    `Check a flight path step by step and report the first unsupported planet or action.`,
		Example: "  missionfuel validate launch:earth land:moon launch:moon land:earth",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			result, err := a.engine.Validate(a.context(cmd), &engine.ValidateRequest{Steps: args})
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), result)
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Mission is valid (%s)", pluralize(result.Steps, "step", "steps")))
			return nil
		},
	}
}

// pluralize formats a count with the right noun.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
