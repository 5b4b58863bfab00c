package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fs2dt/fs2dt/internal/config"
	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

// loadConfig loads .env, then the config file, then applies FS2DT_*
// environment overrides. A missing ./fs2dt.yaml is not an error; a missing
// file named by --config is.
func loadConfig(explicitPath string) (*config.Config, error) {
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if explicitPath != "" {
		cfg, err = config.LoadFile(explicitPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", explicitPath, fs2dt.ErrInvalidConfig)
		}
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = &config.Config{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// resolveCatalogPath applies flag > config/env > default.
func resolveCatalogPath(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Catalog != "" {
		return cfg.Catalog, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory for the default catalog; use --catalog: %v: %w", err, fs2dt.ErrInvalidConfig)
	}
	return config.DefaultCatalogPath(home), nil
}
