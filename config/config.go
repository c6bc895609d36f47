package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SkipLogName is the filename of the skip log, resolved against the project root
const SkipLogName = "skipped_large_files.txt"

// Config holds all configuration for the converter
type Config struct {
	Paths  PathsConfig
	Limits LimitsConfig
}

// PathsConfig holds the filesystem locations for a batch run
type PathsConfig struct {
	// InputDir is the directory scanned (non-recursively) for .xml files
	InputDir string `mapstructure:"input_dir"`

	// OutputDir is the directory receiving one .xlsx file per converted input
	OutputDir string `mapstructure:"output_dir"`

	// ProjectRoot is the directory the skip log is written under
	ProjectRoot string `mapstructure:"project_root"`
}

// LimitsConfig holds the document size guards
type LimitsConfig struct {
	// EstimatorEarlyExit stops the streaming <upc> count once exceeded
	EstimatorEarlyExit int `mapstructure:"estimator_early_exit"`

	// MaxUPCCount rejects a document whose estimated <upc> count exceeds it
	MaxUPCCount int `mapstructure:"max_upc_count"`

	// MaxRows rejects a flattened table larger than the single-sheet ceiling
	MaxRows int `mapstructure:"max_rows"`

	// MaxFileBytes rejects a document file larger than this before the full
	// parse; 0 disables the guard
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

// SkipLogPath returns the location of the skip log file
func (p *PathsConfig) SkipLogPath() string {
	return filepath.Join(p.ProjectRoot, SkipLogName)
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lenscat/")

	// Environment variable settings
	v.SetEnvPrefix("LENSCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Path defaults (input and output are required, registered for env lookup)
	v.SetDefault("paths.input_dir", "")
	v.SetDefault("paths.output_dir", "")
	v.SetDefault("paths.project_root", ".")

	// Limit defaults. The estimator threshold deliberately sits above the
	// rejection cap so an early-exited count is still conclusive.
	v.SetDefault("limits.estimator_early_exit", 1200000)
	v.SetDefault("limits.max_upc_count", 1000000)
	v.SetDefault("limits.max_rows", 1048576) // Excel single-sheet maximum
	v.SetDefault("limits.max_file_bytes", int64(1)<<30)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Paths.InputDir == "" {
		return fmt.Errorf("input directory is required (set LENSCAT_PATHS_INPUT_DIR)")
	}

	if config.Paths.OutputDir == "" {
		return fmt.Errorf("output directory is required (set LENSCAT_PATHS_OUTPUT_DIR)")
	}

	if config.Limits.MaxUPCCount <= 0 {
		return fmt.Errorf("max UPC count must be positive, got: %d", config.Limits.MaxUPCCount)
	}

	if config.Limits.EstimatorEarlyExit < config.Limits.MaxUPCCount {
		return fmt.Errorf("estimator early-exit threshold (%d) must not be below max UPC count (%d)",
			config.Limits.EstimatorEarlyExit, config.Limits.MaxUPCCount)
	}

	if config.Limits.MaxRows <= 0 {
		return fmt.Errorf("max rows must be positive, got: %d", config.Limits.MaxRows)
	}

	if config.Limits.MaxFileBytes < 0 {
		return fmt.Errorf("max file bytes must not be negative, got: %d", config.Limits.MaxFileBytes)
	}

	return nil
}
