package cmd

import (
	"github.com/spf13/cobra"
)

// searchCmd evaluates a JMESPath expression against the document.
var searchCmd = &cobra.Command{
	Use:     "search EXPRESSION",
	Short:   "Evaluate a JMESPath expression against the document",
	Example: "yamldb search \"services[?port > `1000`].name\"",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		result, err := db.Search(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString(flagOutput)
		return printValue(format, result)
	},
}

func init() {
	searchCmd.Flags().StringP(flagOutput, "o", outputYAML, "Output format: yaml or json")
	RootCmd.AddCommand(searchCmd)
}
