package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/missionfuel/internal/config"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file at ~/.missionfuel/config.yaml (or --config).

The file holds extra gravity entries, the default output format, logging
and the restart policy used by "missionfuel serve".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.DefaultPaths()
			if err != nil {
				return fmt.Errorf("failed to get config paths: %w", err)
			}

			target := opts.configPath
			if target == "" {
				if err := paths.EnsureDirectories(); err != nil {
					return fmt.Errorf("failed to ensure directories: %w", err)
				}
				target = paths.Config
			}

			if err := config.WriteDefault(target, force); err != nil {
				return err
			}

			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote config to %s", target))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
