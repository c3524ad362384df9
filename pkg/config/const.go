package config

const (
	YamlDBCommand        = "yamldb"
	CliConfigFileName    = "yamldb"
	DotCliConfigFileName = ".yamldb"

	SystemDirConfigFilePath = "/usr/local/etc/yamldb"
	WindowsAppDataEnvVar    = "LOCALAPPDATA"

	// ConfigPathEnvVar points at a directory holding the CLI config file.
	ConfigPathEnvVar = "YAMLDB_CONFIG_PATH"

	// EnvVarPrefix prefixes the environment overrides for individual
	// config keys (YAMLDB_DATABASE_FILE, YAMLDB_LOGS_LEVEL, ...).
	EnvVarPrefix = "YAMLDB"

	// DefaultDatabaseFile is the document location when none is configured.
	DefaultDatabaseFile = "yamldb.yml"

	// DefaultBackend persists the document to the database file.
	DefaultBackend = ":file:"
)
