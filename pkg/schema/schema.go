package schema

// Configuration represents the schema for the `.yamldb.yaml` CLI config.
type Configuration struct {
	BasePath string   `yaml:"base_path" json:"base_path" mapstructure:"base_path"`
	Database Database `yaml:"database" json:"database" mapstructure:"database"`
	Logs     Logs     `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Settings Settings `yaml:"settings,omitempty" json:"settings,omitempty" mapstructure:"settings"`
	Schemas  Schemas  `yaml:"schemas,omitempty" json:"schemas,omitempty" mapstructure:"schemas"`

	// CliConfigPath is the directory of the config file that was loaded, if any.
	CliConfigPath string `yaml:"cli_config_path,omitempty" json:"cli_config_path,omitempty" mapstructure:"cli_config_path"`

	Initialized bool `yaml:"initialized" json:"initialized" mapstructure:"initialized"`
	Default     bool `yaml:"default" json:"default" mapstructure:"default"`
}

// Database configures where the document lives and how it is persisted.
type Database struct {
	// File is the document location for the file backend.
	File string `yaml:"file" json:"file" mapstructure:"file"`
	// Backend is ":file:", ":memory:", or a backend URI ("redis://...", "sqlite://...").
	Backend string `yaml:"backend" json:"backend" mapstructure:"backend"`
	// AutoFlush persists the document after every mutation.
	AutoFlush bool `yaml:"auto_flush" json:"auto_flush" mapstructure:"auto_flush"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

type Settings struct {
	ListMergeStrategy string `yaml:"list_merge_strategy" json:"list_merge_strategy" mapstructure:"list_merge_strategy"`
	Indent            int    `yaml:"indent,omitempty" json:"indent,omitempty" mapstructure:"indent"`
}

type Schemas struct {
	BasePath string `yaml:"base_path,omitempty" json:"base_path,omitempty" mapstructure:"base_path"`
}
