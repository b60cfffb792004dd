package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GRADEBOOK_LOG_LEVEL.
const EnvPrefix = "GRADEBOOK"

// Default values.
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultDocumentPath    = "gradebook_data.json"
	DefaultReportPath      = "gradebook.xlsx"
	DefaultSheetName       = "Grades"
	DefaultTimestampLayout = "02.01.2006 15:04"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"data":      "storage.document_path",
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config file. When empty, Load looks for an
	// optional gradebook.{yaml,json,toml} in the working directory.
	ConfigFile string

	// Flags, when set, override everything else for the keys in flagKeys
	// whose flag was changed on the command line.
	Flags *pflag.FlagSet
}

// Load configuration from defaults, config file, environment variables and flags.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("gradebook")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("storage.document_path", DefaultDocumentPath)
	v.SetDefault("report.default_path", DefaultReportPath)
	v.SetDefault("report.sheet_name", DefaultSheetName)
	v.SetDefault("report.timestamp_layout", DefaultTimestampLayout)
}
