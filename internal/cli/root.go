package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel   string
	traceSpans bool

	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for wayfinder.
var rootCmd = &cobra.Command{
	Use:     "wayfinder",
	Version: "dev",
	Short:   "Route reconciliation for screen trees",
	Long: `wayfinder reconciles a tree of live screens against a requested route.

It computes the changes between two routes and replays scripted navigation
from a manifest, headless or in an SDL window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// helpFunc colors the group and section titles of the default help layout.
func helpFunc(cmd *cobra.Command, args []string) {
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

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")
		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-9s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
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

func init() {
	rootCmd.SetHelpFunc(helpFunc)

	rootCmd.PersistentFlags().BoolVar(&traceSpans, "trace", false, "Write navigator spans to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Application log level (debug, info, warn, error); overrides the manifest")

	rootCmd.AddGroup(&cobra.Group{ID: "navigation", Title: "Navigation:"})
	rootCmd.AddGroup(&cobra.Group{ID: "cli-tooling", Title: "CLI & Tooling:"})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the wayfinder CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
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
	}
	rootCmd.SetHelpCommand(helpCmd)

	diffCmd.GroupID = "navigation"
	playCmd.GroupID = "navigation"
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(playCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
