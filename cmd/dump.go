package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
	"github.com/cloudmesh/yamldb/pkg/yamldb"
)

// dumpCmd writes the whole document to stdout or a file.
var dumpCmd = &cobra.Command{
	Use:     "dump",
	Short:   "Write the whole document as YAML or JSON",
	Example: "yamldb dump\nyamldb dump --output json\nyamldb dump --output json --to backup.json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		format, _ := cmd.Flags().GetString(flagOutput)
		target, _ := cmd.Flags().GetString("to")

		if target == "" {
			return printValue(format, db.Map())
		}

		switch format {
		case outputYAML:
			return u.WriteToFileAsYAML(target, db.Map(), yamldb.DefaultFileMode)
		case outputJSON:
			return u.WriteToFileAsJSON(target, db.Map(), yamldb.DefaultFileMode)
		default:
			return fmt.Errorf("%w: '%s'", errUtils.ErrInvalidOutputFormat, format)
		}
	},
}

func init() {
	dumpCmd.Flags().StringP(flagOutput, "o", outputYAML, "Output format: yaml or json")
	dumpCmd.Flags().String("to", "", "Write to this file instead of stdout")
	RootCmd.AddCommand(dumpCmd)
}
