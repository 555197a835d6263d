// Package config loads CLI settings from flags, environment and an optional
// formstate.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/tui"
	"github.com/goliatone/go-formstate/pkg/validators"
)

// EnvPrefix namespaces environment overrides (FORMSTATE_OUTPUT, ...).
const EnvPrefix = "FORMSTATE"

// Config holds the resolved CLI settings.
type Config struct {
	Output      string            `mapstructure:"output"`
	LogLevel    string            `mapstructure:"log_level"`
	LogFormat   string            `mapstructure:"log_format"`
	Prefill     string            `mapstructure:"prefill"`
	MaxAttempts int               `mapstructure:"max_attempts"`
	Chains      map[string]string `mapstructure:"chains"`
	Labels      map[string]string `mapstructure:"labels"`
	Theme       ThemeConfig       `mapstructure:"theme"`
}

// ThemeConfig mirrors tui.Theme.
type ThemeConfig struct {
	ErrorPrefix string `mapstructure:"error_prefix"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", string(tui.OutputFormatPrettyText))
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("prefill", "")
	v.SetDefault("max_attempts", 0)
	v.SetDefault("theme.error_prefix", "✗ ")
}

// Load reads file (or formstate.yaml from the working and home directories
// when file is empty), applies environment overrides and decodes the
// result. A missing default config file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("formstate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, ok := tui.ParseOutputFormat(c.Output); !ok {
		return fmt.Errorf("config: unsupported output format %q", c.Output)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config: max_attempts must be >= 0, got %d", c.MaxAttempts)
	}
	for field, name := range c.Chains {
		if _, ok := validators.Lookup(name); !ok {
			return fmt.Errorf("config: field %q uses unknown validator chain %q (known: %s)",
				field, name, strings.Join(validators.Registered(), ", "))
		}
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c Config) OutputFormat() tui.OutputFormat {
	format, _ := tui.ParseOutputFormat(c.Output)
	return format
}

// ChainsFor resolves the configured chain of each named field. Keys are
// matched case-insensitively because viper lowercases map keys.
func (c Config) ChainsFor(names []formstate.FieldName) (map[formstate.FieldName]validators.Chain, error) {
	out := make(map[formstate.FieldName]validators.Chain)
	for key, chainName := range c.Chains {
		name, ok := matchField(names, key)
		if !ok {
			return nil, fmt.Errorf("config: chains: %w: %q", formstate.ErrUnknownField, key)
		}
		chain, ok := validators.Lookup(chainName)
		if !ok {
			return nil, fmt.Errorf("config: unknown validator chain %q", chainName)
		}
		out[name] = chain
	}
	return out, nil
}

// LabelsFor resolves prompt labels with the same key matching as ChainsFor.
func (c Config) LabelsFor(names []formstate.FieldName) map[formstate.FieldName]string {
	out := make(map[formstate.FieldName]string)
	for key, label := range c.Labels {
		if name, ok := matchField(names, key); ok {
			out[name] = label
		}
	}
	return out
}

// ThemeOf converts the theme settings.
func (c Config) ThemeOf() tui.Theme {
	return tui.Theme{ErrorPrefix: c.Theme.ErrorPrefix}
}

func matchField(names []formstate.FieldName, key string) (formstate.FieldName, bool) {
	key = strings.TrimSpace(key)
	for _, name := range names {
		if strings.EqualFold(string(name), key) {
			return name, true
		}
	}
	return "", false
}
