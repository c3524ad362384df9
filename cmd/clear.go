package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

// clearCmd deletes every entry in the document.
var clearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Delete every entry in the document",
	Example: "yamldb clear --force",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			err := fmt.Errorf("%w: refusing to clear the database", errUtils.ErrInvalidArgument)
			return errUtils.WithHint(err, "Pass --force to delete every entry.")
		}

		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		return db.Clear()
	},
}

func init() {
	clearCmd.Flags().Bool("force", false, "Actually clear the database")
	RootCmd.AddCommand(clearCmd)
}
