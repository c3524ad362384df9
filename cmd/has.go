package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

// hasCmd reports whether a dotted path exists: prints "true" or "false" and
// exits 0 or 1, so it composes in shell conditionals.
var hasCmd = &cobra.Command{
	Use:     "has KEY",
	Short:   "Report whether a dotted path exists (exit code 0/1)",
	Example: "yamldb has db.mongo.port && echo configured",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if db.Has(args[0]) {
			fmt.Println("true")
			return nil
		}

		fmt.Println("false")
		return errUtils.WithExitCode(errUtils.ErrSilent, 1)
	},
}

func init() {
	RootCmd.AddCommand(hasCmd)
}
