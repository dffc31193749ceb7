package app

import (
	"fmt"

	"fx-data/internal/catalog"
	"fx-data/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSaver creates the Saver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideSaver(cfg *Config) (saver.Saver, error) {
	s := saver.New(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideCatalog loads and validates the request catalog (for Wire).
func ProvideCatalog(cfg *Config) ([]catalog.Request, error) {
	return catalog.Load(cfg.CatalogFile)
}
