package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/cucable"
)

// DefaultConfigName is the file looked up in the working directory when no
// config file is given.
const DefaultConfigName = "cucable.yaml"

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the raw configuration of a generation run as read from files,
// environment and flags. Path properties are nil when no source set them.
type Config struct {
	SourceRunnerTemplateFile  *string       `mapstructure:"source_runner_template_file" yaml:"source_runner_template_file,omitempty"`
	GeneratedRunnerDirectory  *string       `mapstructure:"generated_runner_directory" yaml:"generated_runner_directory,omitempty"`
	SourceFeatures            *string       `mapstructure:"source_features" yaml:"source_features,omitempty"`
	GeneratedFeatureDirectory *string       `mapstructure:"generated_feature_directory" yaml:"generated_feature_directory,omitempty"`
	ParallelizationMode       string        `mapstructure:"parallelization_mode" yaml:"parallelization_mode,omitempty"`
	IncludeScenarioTags       []string      `mapstructure:"include_scenario_tags" yaml:"include_scenario_tags,omitempty"`
	ExcludeScenarioTags       []string      `mapstructure:"exclude_scenario_tags" yaml:"exclude_scenario_tags,omitempty"`
	CustomPlaceholders        []Placeholder `mapstructure:"custom_placeholders" yaml:"custom_placeholders,omitempty" validate:"dive"`
	DesiredNumberOfRunners    int           `mapstructure:"desired_number_of_runners" yaml:"desired_number_of_runners,omitempty" validate:"min=0"`
	Strict                    bool          `mapstructure:"strict" yaml:"strict,omitempty"`
	Log                       LogConfig     `mapstructure:"log" yaml:"log,omitempty"`
}

// Placeholder is a custom placeholder substitution. Placeholders are a list
// rather than a map so that keys keep their case.
type Placeholder struct {
	Key   string `mapstructure:"key" yaml:"key" validate:"required"`
	Value string `mapstructure:"value" yaml:"value"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level,omitempty" validate:"required,oneof=default compact minimal off"`
	Format string `mapstructure:"format" yaml:"format,omitempty" validate:"required,oneof=text json"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
// Flags missing from this map are not configuration values.
var flagToViperKey = map[string]string{
	"source-runner-template-file": "source_runner_template_file",
	"generated-runner-directory":  "generated_runner_directory",
	"source-features":             "source_features",
	"generated-feature-directory": "generated_feature_directory",
	"parallelization-mode":        "parallelization_mode",
	"include-tags":                "include_scenario_tags",
	"exclude-tags":                "exclude_scenario_tags",
	"runners":                     "desired_number_of_runners",
	"strict":                      "strict",
	"log-level":                   "log.level",
	"log-format":                  "log.format",
}

// envKeys have no default value and must be bound explicitly so that
// environment variables reach Unmarshal.
var envKeys = []string{
	"source_runner_template_file",
	"generated_runner_directory",
	"source_features",
	"generated_feature_directory",
	"include_scenario_tags",
	"exclude_scenario_tags",
}

// bindFlags binds explicitly set CLI flags to viper keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey, ok := flagToViperKey[f.Name]
		if !ok || !f.Changed {
			return
		}
		_ = v.BindPFlag(viperKey, f)
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("parallelization_mode", string(cucable.ModeFeatures))
	v.SetDefault("desired_number_of_runners", 0)
	v.SetDefault("strict", false)

	v.SetDefault("log.level", string(cucable.LogLevelDefault))
	v.SetDefault("log.format", "text")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
//
// Every config file is checked against the configuration schema before it is
// merged. Property values themselves are validated by Apply.
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		read := 0
		for _, cf := range configFiles {
			if err := ValidateFile(cf); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					slog.Warn("config file not found", "file", cf)
					continue
				}
				return nil, err
			}

			v.SetConfigFile(cf)
			var err error
			if read == 0 {
				err = v.ReadInConfig()
			} else {
				err = v.MergeInConfig()
			}
			if err != nil {
				return nil, fmt.Errorf("read config file %s: %w", cf, err)
			}
			read++
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultConfigName, filepath.Ext(DefaultConfigName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := ValidateFile(v.ConfigFileUsed()); err != nil {
			return nil, err
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("CUCABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that are not property values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Placeholders returns the custom placeholders as a map.
// Later entries win over earlier ones with the same key.
func (c *Config) Placeholders() map[string]string {
	out := make(map[string]string, len(c.CustomPlaceholders))
	for _, p := range c.CustomPlaceholders {
		out[p.Key] = p.Value
	}
	return out
}

// MandatoryPolicy returns the policy selected by the strict setting.
func (c *Config) MandatoryPolicy() cucable.MandatoryPolicy {
	if c.Strict {
		return cucable.UnsetOrEmpty
	}
	return cucable.UnsetOnly
}

// Apply passes the configuration to the setters of pm and returns the first
// validation error unchanged. Unset path properties are left unset.
func (c *Config) Apply(pm *cucable.PropertyManager) error {
	if c.SourceRunnerTemplateFile != nil {
		pm.SetSourceRunnerTemplateFile(*c.SourceRunnerTemplateFile)
	}
	if c.GeneratedRunnerDirectory != nil {
		pm.SetGeneratedRunnerDirectory(*c.GeneratedRunnerDirectory)
	}
	if c.SourceFeatures != nil {
		pm.SetSourceFeatures(*c.SourceFeatures)
	}
	if c.GeneratedFeatureDirectory != nil {
		pm.SetGeneratedFeatureDirectory(*c.GeneratedFeatureDirectory)
	}
	if c.ParallelizationMode != "" {
		if err := pm.SetParallelizationMode(c.ParallelizationMode); err != nil {
			return err
		}
	}
	if err := pm.SetIncludeScenarioTags(c.IncludeScenarioTags); err != nil {
		return err
	}
	if err := pm.SetExcludeScenarioTags(c.ExcludeScenarioTags); err != nil {
		return err
	}
	pm.SetCustomPlaceholders(c.Placeholders())
	pm.SetDesiredNumberOfRunners(c.DesiredNumberOfRunners)
	return nil
}

// NewPropertyManager creates a PropertyManager for logger and applies c to it.
func (c *Config) NewPropertyManager(logger cucable.Logger) (*cucable.PropertyManager, error) {
	pm := cucable.NewPropertyManager(logger, cucable.WithMandatoryPolicy(c.MandatoryPolicy()))
	if err := c.Apply(pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// Save writes the config as YAML to the specified path.
// Creates the parent directory if it doesn't exist.
func (c *Config) Save(path string) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
