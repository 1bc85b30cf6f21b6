package cli

import (
	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/pkg/npyi"
)

// lookupCommand creates the lookup command.
func (c *CLI) lookupCommand() *cobra.Command {
	var (
		apiVersion string
		output     string
	)

	cmd := &cobra.Command{
		Use:     "lookup <npi>",
		Short:   "Show the provider with a given NPI",
		Example: `  npyi lookup 1417367343`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api-version") {
				cfg.APIVersion = apiVersion
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			client, err := newClient(cfg, logger)
			if err != nil {
				return err
			}

			spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Looking up "+args[0]+"...")
			spinner.Start()
			provider, err := client.Lookup(ctx, args[0], npyi.WithVersion(cfg.APIVersion))
			spinner.Stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output == outputJSON {
				return writeJSON(out, provider)
			}
			printProvider(out, provider)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiVersion, "api-version", "", "NPPES API version")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	cmd.RegisterFlagCompletionFunc("api-version", fixedCompletion(npyi.ValidVersions()))
	cmd.RegisterFlagCompletionFunc("output", fixedCompletion(validOutputs))

	return cmd
}
