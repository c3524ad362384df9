package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/filetype"
	"github.com/cloudmesh/yamldb/pkg/yamldb"
)

// mergeCmd folds external documents into the database. By default each file
// is inserted under its own top-level id; with --deep the files are
// deep-merged into the document instead.
var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "Merge external YAML or JSON documents into the database",
	Long: `Merges external documents into the database. By default each file must
carry a top-level id key and is inserted under that id. With --deep the files
are deep-merged into the document, later files taking precedence; --strategy
controls how lists combine (replace, append, merge).`,
	Example: "yamldb merge vm1.yaml vm2.yaml\nyamldb merge --id-key name inventory.yaml\nyamldb merge --deep --strategy append overrides.yaml",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
			cliConfig.Settings.ListMergeStrategy = strategy
		}

		var extra []yamldb.Option
		if idKey, _ := cmd.Flags().GetString("id-key"); idKey != "" {
			extra = append(extra, yamldb.WithIDKey(idKey))
		}

		db, err := openDatabase(cmd, extra...)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if deep, _ := cmd.Flags().GetBool("deep"); deep {
			docs, err := readDocuments(args)
			if err != nil {
				return err
			}
			return db.Merge(docs...)
		}

		return db.MergeFiles(args...)
	},
}

func readDocuments(paths []string) ([]map[string]any, error) {
	docs := make([]map[string]any, 0, len(paths))
	for _, path := range paths {
		parsed, err := filetype.ParseFileByExtension(os.ReadFile, path)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, path, err)
		}
		doc, ok := parsed.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", errUtils.ErrDocumentNotMap, path)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func init() {
	mergeCmd.Flags().String("strategy", "", "List merge strategy for --deep: replace, append, or merge")
	mergeCmd.Flags().String("id-key", "", "Top-level key naming each document (default \"id\")")
	mergeCmd.Flags().Bool("deep", false, "Deep-merge the files into the document instead of inserting by id")
	RootCmd.AddCommand(mergeCmd)
}
