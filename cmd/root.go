package cmd

import (
	"github.com/spf13/cobra"

	cfg "github.com/cloudmesh/yamldb/pkg/config"
	log "github.com/cloudmesh/yamldb/pkg/logger"
	"github.com/cloudmesh/yamldb/pkg/schema"
	"github.com/cloudmesh/yamldb/pkg/version"
	"github.com/cloudmesh/yamldb/pkg/yamldb"
)

var cliConfig schema.Configuration

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "yamldb",
	Short: "YAML-file-backed hierarchical key/value database",
	Long: `yamldb keeps a YAML document and lets you read, write, merge, query, and
validate values addressed by dotted paths ("db.mongo.port").`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		var err error
		cliConfig, err = cfg.InitCliConfig(configPath)
		if err != nil {
			return err
		}

		return setupLogger(cmd)
	},
}

// Execute adds all child commands to the root command and runs it.
// Called once, by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func setupLogger(cmd *cobra.Command) error {
	level := cliConfig.Logs.Level
	if flagLevel, _ := cmd.Flags().GetString("logs-level"); flagLevel != "" {
		level = flagLevel
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)

	if cliConfig.CliConfigPath != "" {
		log.Debug("Loaded CLI configuration", "path", cliConfig.CliConfigPath)
	}
	return nil
}

// openDatabase builds a DB from the CLI configuration with the global flags
// applied on top.
func openDatabase(cmd *cobra.Command, extra ...yamldb.Option) (*yamldb.DB, error) {
	opts := []yamldb.Option{yamldb.WithConfiguration(&cliConfig)}

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		opts = append(opts, yamldb.WithFile(file))
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		opts = append(opts, yamldb.WithBackend(backend))
	}
	if noFlush, _ := cmd.Flags().GetBool("no-flush"); noFlush {
		opts = append(opts, yamldb.WithAutoFlush(false))
	}
	opts = append(opts, extra...)

	return yamldb.New(opts...)
}

// closeDatabase releases the database without a final flush: mutations are
// persisted when they happen (unless --no-flush turned that off), and pure
// readers must not rewrite the document.
func closeDatabase(db *yamldb.DB) {
	if err := db.Discard(); err != nil {
		log.Trace("Failed to close database", "error", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("file", "f", "", "Path to the database file (default \""+yamldb.DefaultFile+"\")")
	RootCmd.PersistentFlags().String("backend", "", "Persistence backend: \":file:\", \":memory:\", \"redis://...\", or \"sqlite://...\"")
	RootCmd.PersistentFlags().String("config", "", "Path to a CLI configuration file or directory")
	RootCmd.PersistentFlags().String("logs-level", "", "Logs level: Trace, Debug, Info, Warning, Error, Fatal, Off")
	RootCmd.PersistentFlags().Bool("no-flush", false, "Do not persist mutations (dry run)")
}
