package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/filetype"
)

// setCmd stores a value at a dotted path, creating intermediate mappings.
var setCmd = &cobra.Command{
	Use:     "set KEY [VALUE]",
	Short:   "Store a value at a dotted path",
	Long:    `Stores a value at a dotted path, creating intermediate mappings as needed. The value is parsed as YAML ("8080" becomes an integer); use --string to keep the raw text, or --from-file to read it from a YAML or JSON file. Combining --from-file with --string stores the file content verbatim.`,
	Example: "yamldb set db.mongo.port 27017\nyamldb set service.name api --string\nyamldb set service --from-file service.yaml",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFile, _ := cmd.Flags().GetString("from-file")
		asString, _ := cmd.Flags().GetBool("string")

		var value any
		switch {
		case fromFile != "" && len(args) > 1:
			return fmt.Errorf("%w: VALUE and --from-file are mutually exclusive", errUtils.ErrInvalidArgument)
		case fromFile != "":
			parse := filetype.ParseFileByExtension
			if asString {
				parse = filetype.ParseFileRaw
			}
			parsed, err := parse(os.ReadFile, fromFile)
			if err != nil {
				return fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, fromFile, err)
			}
			value = parsed
		case len(args) == 2:
			value = parseValueArg(args[1], asString)
		default:
			return fmt.Errorf("%w: provide VALUE or --from-file", errUtils.ErrInvalidArgument)
		}

		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		return db.Set(args[0], value)
	},
}

func init() {
	setCmd.Flags().Bool("string", false, "Store the value as a raw string instead of parsing it as YAML")
	setCmd.Flags().String("from-file", "", "Read the value from a YAML or JSON file")
	RootCmd.AddCommand(setCmd)
}
