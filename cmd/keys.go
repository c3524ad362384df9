package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// keysCmd lists the dotted path of every leaf in the document.
var keysCmd = &cobra.Command{
	Use:     "keys",
	Short:   "List the dotted paths of all leaves, sorted",
	Example: "yamldb keys\nyamldb keys --prefix db.mongo",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		keys := db.Keys()
		if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
			keys = lo.Filter(keys, func(key string, _ int) bool {
				return strings.HasPrefix(key, prefix)
			})
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

func init() {
	keysCmd.Flags().String("prefix", "", "Only list keys starting with this prefix")
	RootCmd.AddCommand(keysCmd)
}
