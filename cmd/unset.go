package cmd

import (
	"github.com/spf13/cobra"
)

// unsetCmd removes the entry at a dotted path.
var unsetCmd = &cobra.Command{
	Use:     "unset KEY",
	Short:   "Remove the entry at a dotted path",
	Example: "yamldb unset db.mongo.password",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		return db.Delete(args[0])
	},
}

func init() {
	RootCmd.AddCommand(unsetCmd)
}
