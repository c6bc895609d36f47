package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("LENSCAT_PATHS_INPUT_DIR")
		os.Unsetenv("LENSCAT_PATHS_OUTPUT_DIR")
		os.Unsetenv("LENSCAT_PATHS_PROJECT_ROOT")
		os.Unsetenv("LENSCAT_LIMITS_ESTIMATOR_EARLY_EXIT")
		os.Unsetenv("LENSCAT_LIMITS_MAX_UPC_COUNT")
		os.Unsetenv("LENSCAT_LIMITS_MAX_ROWS")
		os.Unsetenv("LENSCAT_LIMITS_MAX_FILE_BYTES")
	}

	t.Run("loads with defaults when only required paths set", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_INPUT_DIR", "/data/in")
		os.Setenv("LENSCAT_PATHS_OUTPUT_DIR", "/data/out")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Paths.ProjectRoot != "." {
			t.Errorf("Paths.ProjectRoot = %s, want .", cfg.Paths.ProjectRoot)
		}
		if cfg.Limits.EstimatorEarlyExit != 1200000 {
			t.Errorf("Limits.EstimatorEarlyExit = %d, want 1200000", cfg.Limits.EstimatorEarlyExit)
		}
		if cfg.Limits.MaxUPCCount != 1000000 {
			t.Errorf("Limits.MaxUPCCount = %d, want 1000000", cfg.Limits.MaxUPCCount)
		}
		if cfg.Limits.MaxRows != 1048576 {
			t.Errorf("Limits.MaxRows = %d, want 1048576", cfg.Limits.MaxRows)
		}
		if cfg.Limits.MaxFileBytes != int64(1)<<30 {
			t.Errorf("Limits.MaxFileBytes = %d, want %d", cfg.Limits.MaxFileBytes, int64(1)<<30)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_INPUT_DIR", "/srv/catalogs")
		os.Setenv("LENSCAT_PATHS_OUTPUT_DIR", "/srv/sheets")
		os.Setenv("LENSCAT_PATHS_PROJECT_ROOT", "/srv")
		os.Setenv("LENSCAT_LIMITS_ESTIMATOR_EARLY_EXIT", "600")
		os.Setenv("LENSCAT_LIMITS_MAX_UPC_COUNT", "500")
		os.Setenv("LENSCAT_LIMITS_MAX_ROWS", "1000")
		os.Setenv("LENSCAT_LIMITS_MAX_FILE_BYTES", "2048")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Paths.InputDir != "/srv/catalogs" {
			t.Errorf("Paths.InputDir = %s, want /srv/catalogs", cfg.Paths.InputDir)
		}
		if cfg.Paths.OutputDir != "/srv/sheets" {
			t.Errorf("Paths.OutputDir = %s, want /srv/sheets", cfg.Paths.OutputDir)
		}
		if cfg.Paths.ProjectRoot != "/srv" {
			t.Errorf("Paths.ProjectRoot = %s, want /srv", cfg.Paths.ProjectRoot)
		}
		if cfg.Limits.EstimatorEarlyExit != 600 {
			t.Errorf("Limits.EstimatorEarlyExit = %d, want 600", cfg.Limits.EstimatorEarlyExit)
		}
		if cfg.Limits.MaxUPCCount != 500 {
			t.Errorf("Limits.MaxUPCCount = %d, want 500", cfg.Limits.MaxUPCCount)
		}
		if cfg.Limits.MaxRows != 1000 {
			t.Errorf("Limits.MaxRows = %d, want 1000", cfg.Limits.MaxRows)
		}
		if cfg.Limits.MaxFileBytes != 2048 {
			t.Errorf("Limits.MaxFileBytes = %d, want 2048", cfg.Limits.MaxFileBytes)
		}
	})

	t.Run("fails when input directory is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_OUTPUT_DIR", "/data/out")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing input dir")
		}
	})

	t.Run("fails when output directory is missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_INPUT_DIR", "/data/in")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing output dir")
		}
	})

	t.Run("fails when early-exit threshold is below the UPC cap", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_INPUT_DIR", "/data/in")
		os.Setenv("LENSCAT_PATHS_OUTPUT_DIR", "/data/out")
		os.Setenv("LENSCAT_LIMITS_ESTIMATOR_EARLY_EXIT", "100")
		os.Setenv("LENSCAT_LIMITS_MAX_UPC_COUNT", "200")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for threshold below cap")
		}
	})

	t.Run("fails when max rows is zero", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LENSCAT_PATHS_INPUT_DIR", "/data/in")
		os.Setenv("LENSCAT_PATHS_OUTPUT_DIR", "/data/out")
		os.Setenv("LENSCAT_LIMITS_MAX_ROWS", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for zero max rows")
		}
	})
}

func TestSkipLogPath(t *testing.T) {
	t.Run("joins project root and log filename", func(t *testing.T) {
		paths := PathsConfig{ProjectRoot: "/srv/lenscat"}
		want := filepath.Join("/srv/lenscat", SkipLogName)
		if got := paths.SkipLogPath(); got != want {
			t.Errorf("SkipLogPath() = %s, want %s", got, want)
		}
	})

	t.Run("resolves relative to current directory by default", func(t *testing.T) {
		paths := PathsConfig{ProjectRoot: "."}
		if got := paths.SkipLogPath(); got != SkipLogName {
			t.Errorf("SkipLogPath() = %s, want %s", got, SkipLogName)
		}
	})
}
