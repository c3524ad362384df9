package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	errUtils "github.com/cloudmesh/yamldb/errors"
	log "github.com/cloudmesh/yamldb/pkg/logger"
	"github.com/cloudmesh/yamldb/pkg/schema"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// InitCliConfig loads the CLI configuration from the following locations
// (from lower to higher priority):
// system dir (`/usr/local/etc/yamldb` on Linux, `%LOCALAPPDATA%/yamldb` on Windows)
// XDG config home (`$XDG_CONFIG_HOME/yamldb`)
// home dir (`~/.yamldb`)
// current directory (`.yamldb.yaml`)
// ENV vars (`YAMLDB_CONFIG_PATH` and per-key `YAMLDB_*` overrides)
// an explicit config file or directory passed by the caller (`--config`)
func InitCliConfig(configPath string) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	if err := readSystemConfig(v); err != nil {
		return cfg, err
	}
	if err := readXDGConfig(v); err != nil {
		return cfg, err
	}
	if err := readHomeConfig(v); err != nil {
		return cfg, err
	}
	if err := readWorkDirConfig(v); err != nil {
		return cfg, err
	}
	if err := readEnvConfigPath(v); err != nil {
		return cfg, err
	}
	if configPath != "" {
		if err := readExplicitConfig(v, configPath); err != nil {
			return cfg, err
		}
	}

	cfg.CliConfigPath = v.ConfigFileUsed()

	if cfg.CliConfigPath == "" {
		log.Debug("CLI config was not found", "paths", "system dir, XDG config dir, home dir, current dir, ENV vars")
		log.Debug("Using the default CLI config")
		cfg.Default = true
	}
	if cfg.CliConfigPath != "" && !filepath.IsAbs(cfg.CliConfigPath) {
		absPath, err := filepath.Abs(cfg.CliConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg.CliConfigPath = absPath
	}

	// Per-key environment overrides: YAMLDB_DATABASE_FILE, YAMLDB_LOGS_LEVEL, ...
	// Every key has a default, so AutomaticEnv feeds Unmarshal.
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "error unmarshalling CLI config")
	}

	cfg.Initialized = true
	return cfg, nil
}

// setDefaultConfiguration sets the default configuration for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("database.file", DefaultDatabaseFile)
	v.SetDefault("database.backend", DefaultBackend)
	v.SetDefault("database.auto_flush", true)
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.level", "Info")
	v.SetDefault("settings.list_merge_strategy", "replace")
	v.SetDefault("settings.indent", 2)
	v.SetDefault("schemas.base_path", "")
}

// readSystemConfig loads config from the system dir.
func readSystemConfig(v *viper.Viper) error {
	configFilePath := ""
	if runtime.GOOS == "windows" {
		appDataDir := os.Getenv(WindowsAppDataEnvVar)
		if len(appDataDir) > 0 {
			configFilePath = filepath.Join(appDataDir, YamlDBCommand)
		}
	} else {
		configFilePath = SystemDirConfigFilePath
	}

	if len(configFilePath) > 0 {
		err := mergeConfig(v, configFilePath, CliConfigFileName)
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readXDGConfig loads config from the XDG config home.
func readXDGConfig(v *viper.Viper) error {
	configFilePath := filepath.Join(xdg.ConfigHome, YamlDBCommand)
	err := mergeConfig(v, configFilePath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readHomeConfig loads config from the user's HOME dir.
func readHomeConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	configFilePath := filepath.Join(home, DotCliConfigFileName)
	err = mergeConfig(v, configFilePath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readWorkDirConfig loads config from the current working directory (`.yamldb.yaml`).
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	err = mergeConfig(v, wd, DotCliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readEnvConfigPath loads config from the directory named by YAMLDB_CONFIG_PATH.
func readEnvConfigPath(v *viper.Viper) error {
	envPath := os.Getenv(ConfigPathEnvVar)
	if envPath == "" {
		return nil
	}
	err := mergeConfig(v, envPath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			log.Debug("config not found in ENV var "+ConfigPathEnvVar, "path", envPath)
			return nil
		default:
			return err
		}
	}
	log.Debug("Found config via ENV", ConfigPathEnvVar, envPath)
	return nil
}

// readExplicitConfig loads the config file or directory the caller pointed at.
// Unlike the discovery paths, an explicit path that does not exist is an error.
func readExplicitConfig(v *viper.Viper, configPath string) error {
	if ok, err := u.IsDirectory(configPath); err == nil && ok {
		return mergeConfig(v, configPath, CliConfigFileName)
	}
	if !u.FileExists(configPath) {
		return fmt.Errorf("%w: %s", errUtils.ErrConfigNotFound, configPath)
	}
	v.SetConfigFile(configPath)
	return v.MergeInConfig()
}

// mergeConfig merges config from the specified path and file name.
func mergeConfig(v *viper.Viper, path string, fileName string) error {
	v.AddConfigPath(path)
	v.SetConfigName(fileName)
	return v.MergeInConfig()
}
