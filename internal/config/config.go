package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrLoadConfig indicates a failure to read or parse the YAML configuration.
var ErrLoadConfig = errors.New("config load failed")

// ErrValidateConfig indicates that the loaded configuration is invalid.
var ErrValidateConfig = errors.New("configuration validation failed")

// Config is the immutable process configuration. It is loaded once at
// startup and passed explicitly into every component.
type Config struct {
	Backup    BackupConfig    `mapstructure:"backup"    yaml:"backup"`
	Log       LogConfig       `mapstructure:"log"       yaml:"log"`
	MySQL     MySQLConfig     `mapstructure:"mysql"     yaml:"mysql"`
	Retention RetentionConfig `mapstructure:"retention" yaml:"retention"`
}

// BackupConfig contains global backup options.
type BackupConfig struct {
	Directory       string        `mapstructure:"directory"        yaml:"directory"`
	TimestampFormat string        `mapstructure:"timestamp_format" yaml:"timestamp_format"`
	ToolTimeout     time.Duration `mapstructure:"tool_timeout"     yaml:"tool_timeout,omitempty"`
}

// LogConfig holds the log file destination.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// MySQLConfig holds connection settings for the server being backed up.
// An empty Password means trust-based authentication: no password is
// passed to the client tools at all.
type MySQLConfig struct {
	Host     string `mapstructure:"host"     yaml:"host"`
	Port     string `mapstructure:"port"     yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
}

// RetentionConfig specifies how old a compressed artifact must be before
// the cleanup command deletes it.
type RetentionConfig struct {
	Days int `mapstructure:"days" yaml:"days"`
}

// Load reads the configuration from the given YAML file using Viper and
// unmarshals into the Config struct. A missing file is not an error: the
// built-in defaults apply, optionally overridden by MYBAK_* environment
// variables.
func (c *Config) Load(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MYBAK")
	// Nested keys use dots; env names use underscores
	// (backup.directory -> MYBAK_BACKUP_DIRECTORY).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backup.directory", "/var/backups/mysql")
	v.SetDefault("backup.timestamp_format", "20060102_150405")
	v.SetDefault("backup.tool_timeout", time.Duration(0))
	v.SetDefault("log.file", "/var/log/mybak/mybak.log")
	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", "3306")
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.password", "")
	v.SetDefault("retention.days", 30)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults are a complete configuration
		// on their own.
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return fmt.Errorf("%w: read config %s: %v", ErrLoadConfig, path, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("%w: unmarshal config: %v", ErrLoadConfig, err)
	}

	return c.Validate()
}

// Validate checks the fields no component can default its way around.
func (c *Config) Validate() error {
	if c.Backup.Directory == "" {
		return fmt.Errorf("%w: backup.directory is required", ErrValidateConfig)
	}
	if c.Backup.TimestampFormat == "" {
		return fmt.Errorf("%w: backup.timestamp_format is required", ErrValidateConfig)
	}
	if c.Log.File == "" {
		return fmt.Errorf("%w: log.file is required", ErrValidateConfig)
	}
	if c.Retention.Days < 0 {
		return fmt.Errorf("%w: retention.days must not be negative", ErrValidateConfig)
	}
	return nil
}
