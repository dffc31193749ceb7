package app

import (
	"fmt"
	"strings"

	"fx-data/internal/provider"
)

// CreateProvider creates HistoryProvider from config (currently Dukascopy only)
func CreateProvider(cfg *Config) (provider.HistoryProvider, error) {
	switch strings.ToLower(cfg.DataProvider) {
	case "dukascopy", "dukas":
		return provider.NewDukasProvider(cfg.FeedBaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported data provider: %s. Options: dukascopy", cfg.DataProvider)
	}
}
