package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/npyi"
)

// searchFlags holds the values of the search command's flags.
type searchFlags struct {
	values     map[string]*string // search key -> flag value
	raw        []string           // --param key=value
	apiVersion string
	limit      int
	skip       int
	output     string
}

// flagName maps a search key to its flag, e.g. first_name -> first-name.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	flags := searchFlags{values: map[string]*string{}}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the NPI Registry",
		Long: `Search the NPPES NPI Registry.

Only the flags you set are sent. Name and city values accept a trailing "*"
wildcard after at least two characters.`,
		Example: `  npyi search --first-name jeffrey --state CA --limit 20
  npyi search --organization-name "mercy*" --output json
  npyi search --number 1417367343 --api-version 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, &flags)
		},
	}

	for _, key := range npyi.ValidSearchParams() {
		flags.values[key] = cmd.Flags().String(flagName(key), "", "search by "+strings.ReplaceAll(key, "_", " "))
	}
	cmd.Flags().StringArrayVar(&flags.raw, "param", nil, "raw search parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&flags.apiVersion, "api-version", "", "NPPES API version (default from config, else "+npyi.DefaultVersion+")")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of results")
	cmd.Flags().IntVar(&flags.skip, "skip", 0, "number of results to skip")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table or json")

	cmd.RegisterFlagCompletionFunc(flagName(npyi.ParamAddressPurpose), fixedCompletion(npyi.ValidAddressPurposes()))
	cmd.RegisterFlagCompletionFunc(flagName(npyi.ParamUseFirstNameAlias), fixedCompletion([]string{"true", "false"}))
	cmd.RegisterFlagCompletionFunc("api-version", fixedCompletion(npyi.ValidVersions()))
	cmd.RegisterFlagCompletionFunc("output", fixedCompletion(validOutputs))

	return cmd
}

// params collects the search parameters the user set. Raw --param values
// are applied after the named flags.
func (f *searchFlags) params(cmd *cobra.Command) (npyi.SearchParams, error) {
	params := npyi.SearchParams{}
	for key, v := range f.values {
		if cmd.Flags().Changed(flagName(key)) {
			params[key] = *v
		}
	}
	for _, kv := range f.raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--param %q must have the form key=value", kv)
		}
		params[key] = value
	}
	return params, nil
}

// apply lets explicitly set flags override config values.
func (f *searchFlags) apply(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("api-version") {
		cfg.APIVersion = f.apiVersion
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = f.limit
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = f.output
	}
}

func (c *CLI) runSearch(cmd *cobra.Command, flags *searchFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	flags.apply(cmd, &cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	params, err := flags.params(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	opts := searchOptions(cfg)
	if cmd.Flags().Changed("limit") {
		// An explicit --limit 0 is forwarded so the registry can reject it.
		opts = append(opts, npyi.WithLimit(flags.limit))
	}
	if cmd.Flags().Changed("skip") {
		opts = append(opts, npyi.WithSkip(flags.skip))
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Searching NPI Registry...")
	spinner.Start()
	resp, err := client.Search(ctx, params, opts...)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d providers", resp.ResultCount()))

	out := cmd.OutOrStdout()
	if cfg.Output == outputJSON {
		return writeJSON(out, resp)
	}

	providers, err := resp.Providers()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidResponse, err, "decode providers")
	}
	if len(providers) == 0 {
		printInfo(out, "No providers found")
		return nil
	}
	printProviderTable(out, providers)
	printDetail(out, "%d results", resp.ResultCount())
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
