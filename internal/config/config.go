package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Drill DrillConfig `mapstructure:"drill" validate:"required"`
	Data  DataConfig  `mapstructure:"data" validate:"required"`
}

// DrillConfig contains settings for the interactive drill session.
type DrillConfig struct {
	// System is the gematria system drilled when no flag overrides it.
	System   string `mapstructure:"system"    validate:"required,oneof=hechrachi gadol katan siduri atbash albam avgad"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DataConfig locates the letter table, the example corpus, and the
// progression database on disk.
type DataConfig struct {
	LettersPath  string `mapstructure:"letters_path"  validate:"required"`
	ExamplesPath string `mapstructure:"examples_path" validate:"required"`
	DatabasePath string `mapstructure:"database_path" validate:"required"`
}
