package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional gematria.yaml in the working
// directory and from GEMATRIA_-prefixed environment variables, with the
// environment taking precedence. Returns a validated Config or an error.
func Load() (*Config, error) {
	return load("")
}

// LoadFromFile is Load with an explicit config file path, used by tests.
func LoadFromFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("drill.system", "hechrachi")
	v.SetDefault("drill.log_level", "info")
	v.SetDefault("data.letters_path", "data/letters.csv")
	v.SetDefault("data.examples_path", "data/examples.json")
	v.SetDefault("data.database_path", "data/gematria.db")

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gematria")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("GEMATRIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface nested keys absent from the
	// file, so bind each one explicitly.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"drill.system", "GEMATRIA_DRILL_SYSTEM"},
		{"drill.log_level", "GEMATRIA_DRILL_LOG_LEVEL"},
		{"data.letters_path", "GEMATRIA_DATA_LETTERS_PATH"},
		{"data.examples_path", "GEMATRIA_DATA_EXAMPLES_PATH"},
		{"data.database_path", "GEMATRIA_DATA_DATABASE_PATH"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			details := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details = append(details,
					fmt.Sprintf("%s failed on %q", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(details, "; "))
		}
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}
