package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cloudmesh/yamldb/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Example: "yamldb version",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("yamldb %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Printf("commit: %s\nbuilt:  %s\n", version.Commit, version.Date)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("verbose", false, "Also print the commit and build date")
	RootCmd.AddCommand(versionCmd)
}
