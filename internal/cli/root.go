package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootOptions are the global flags shared by every subcommand.
type rootOptions struct {
	jsonOutput bool
	configPath string
	gravity    map[string]string
	logLevel   string
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// newRootCmd builds the command tree. A fresh tree per execution keeps flag
// values from leaking between runs.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "missionfuel",
		Version: version,
		Short:   "Fuel calculator for multi-step spaceflight missions",
		Long: `missionfuel computes the fuel a ship needs to fly a mission made of
launch and land steps on Earth, the Moon, Mars and any configured body.

Fuel is computed from the last step backwards so that every step lifts the
fuel needed by the steps after it, including the fuel needed to carry fuel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.missionfuel/config.yaml)")
	flags.StringToStringVar(&opts.gravity, "gravity", nil, "Add or override a body's gravity, e.g. --gravity europa=1.315")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "mission-planning",
		Title: "Mission Planning:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "service",
		Title: "Service:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	rootCmd.AddCommand(&cobra.Command{
		Use:     "version",
		Short:   "Print the missionfuel CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
		},
	})

	rootCmd.SetHelpCommand(&cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}
			_ = target.Help()
		},
	})

	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	// Mission Planning commands
	for _, c := range []*cobra.Command{
		newMissionCmd(opts),
		newFuelCmd(opts),
		newValidateCmd(opts),
		newPlanetsCmd(opts),
	} {
		c.GroupID = "mission-planning"
		rootCmd.AddCommand(c)
	}

	// Service commands
	for _, c := range []*cobra.Command{
		newServeCmd(opts),
		newInitCmd(opts),
	} {
		c.GroupID = "service"
		rootCmd.AddCommand(c)
	}

	return rootCmd
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for missionfuel for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	return completionCmd
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if len(cmd.Aliases) > 0 {
		help.WriteString(sectionTitleColor.Sprint("Aliases:"))
		help.WriteString("\n")
		fmt.Fprintf(&help, "  %s\n\n", strings.Join(cmd.Aliases, ", "))
	}

	if cmd.HasExample() {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	// Add grouped commands
	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	// Add ungrouped commands (Additional Commands section)
	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}
