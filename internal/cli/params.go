package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/pkg/npyi"
)

// paramsCommand lists what the registry accepts. It needs no network.
func (c *CLI) paramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List valid search parameters, API versions and address purposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			keys := npyi.ValidSearchParams()
			width := 0
			for _, key := range keys {
				width = max(width, len(key)+1)
			}

			fmt.Fprintln(out, StyleTitle.Render("Search parameters"))
			for _, key := range keys {
				printKeyValueWidth(out, width, key, "--"+flagName(key))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, StyleTitle.Render("API versions"))
			for _, v := range npyi.ValidVersions() {
				switch d, deprecated := npyi.DeprecationFor(v); {
				case deprecated:
					printWarning(out, "%s  deprecated, sunset %s", v, d.Sunset)
				case v == npyi.DefaultVersion:
					printSuccess(out, "%s  default", v)
				default:
					printInfo(out, "%s", v)
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, StyleTitle.Render("Address purposes"))
			for _, p := range npyi.ValidAddressPurposes() {
				printInfo(out, "%s", StyleNumber.Render(p))
			}
			return nil
		},
	}
}
