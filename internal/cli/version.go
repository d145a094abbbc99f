package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcgram/arcgram/pkg/buildinfo"
)

// versionCommand creates the version command printing build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
