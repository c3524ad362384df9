package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// validateCmd checks the document against a JSON Schema.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Validate the document against a JSON Schema",
	Example: "yamldb validate --schema inventory.schema.json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		schemaPath = resolveSchemaPath(schemaPath)

		schemaText, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, schemaPath, err)
		}

		db, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if err := db.Validate(schemaPath, string(schemaText)); err != nil {
			return err
		}

		fmt.Println("document is valid")
		return nil
	},
}

// resolveSchemaPath resolves relative schema names against the configured
// schemas directory.
func resolveSchemaPath(path string) string {
	base := cliConfig.Schemas.BasePath
	if base == "" || filepath.IsAbs(path) || u.FileExists(path) {
		return path
	}
	return filepath.Join(base, path)
}

func init() {
	validateCmd.Flags().String("schema", "", "Path to the JSON Schema file (required)")
	_ = validateCmd.MarkFlagRequired("schema")
	RootCmd.AddCommand(validateCmd)
}
