package config

// Config represents the complete configuration structure
type Config struct {
	Breeze  BreezeConfig  `mapstructure:"breeze"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BreezeConfig holds Breeze API connection details
type BreezeConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
