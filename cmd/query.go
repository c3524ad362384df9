package cmd

import (
	"github.com/spf13/cobra"
)

// queryCmd evaluates a yq v4 expression against the document.
var queryCmd = &cobra.Command{
	Use:     "query EXPRESSION",
	Short:   "Evaluate a yq expression against the document",
	Example: "yamldb query '.services[] | select(.port == 8080) | .name'",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		result, err := db.Query(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString(flagOutput)
		return printValue(format, result)
	},
}

func init() {
	queryCmd.Flags().StringP(flagOutput, "o", outputYAML, "Output format: yaml or json")
	RootCmd.AddCommand(queryCmd)
}
