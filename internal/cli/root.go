package cli

import (
	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "npyi searches the NPPES NPI Registry",
		Long:         `npyi is a command-line client for the CMS NPPES NPI Registry. It validates search parameters locally and prints matching health care providers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// Errors are printed by main with PrintError.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/npyi/config.toml)")
	flags.StringVar(&c.baseURL, "base-url", "", "registry endpoint (overrides config)")
	flags.StringVar(&c.timeout, "timeout", "", "request timeout, e.g. 10s (overrides config)")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.paramsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
