package cmd

import (
	"github.com/spf13/cobra"

	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// getCmd prints the value stored at a dotted path.
var getCmd = &cobra.Command{
	Use:     "get KEY",
	Short:   "Print the value stored at a dotted path",
	Example: "yamldb get db.mongo.port\nyamldb get service --output json\nyamldb get retries --default 5",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		var value any
		if cmd.Flags().Changed("default") {
			raw, _ := cmd.Flags().GetString("default")
			value, err = db.GetWithDefault(args[0], parseValueArg(raw, false))
		} else {
			value, err = db.Get(args[0])
		}
		if err != nil {
			return err
		}

		if query, _ := cmd.Flags().GetString("query"); query != "" {
			value, err = u.EvaluateYqExpression(value, query)
			if err != nil {
				return err
			}
		}

		format, _ := cmd.Flags().GetString(flagOutput)
		return printValue(format, value)
	},
}

func init() {
	getCmd.Flags().String("default", "", "Value to store and return when the key is missing (parsed as YAML)")
	getCmd.Flags().StringP(flagOutput, "o", outputYAML, "Output format: yaml or json")
	getCmd.Flags().StringP("query", "q", "", "yq expression applied to the value before printing")
	RootCmd.AddCommand(getCmd)
}
