package app

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration from environment variables and an
// optional config.yaml. Environment variables take precedence.
type Config struct {
	DataProvider string `mapstructure:"data_provider"`
	FeedBaseURL  string `mapstructure:"feed_base_url"`
	DataDir      string `mapstructure:"data_dir"`
	SaveFormat   string `mapstructure:"save_format"` // csv | json | parquet
	LogLevel     string `mapstructure:"log_level"`   // debug | info | warn | error
	CatalogFile  string `mapstructure:"catalog_file"`
}

// LoadConfig reads config. Defaults cover everything, so a bare environment
// runs the built-in catalog against the production feed.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("data_provider", "dukascopy")
	v.SetDefault("feed_base_url", "") // empty → provider default
	v.SetDefault("data_dir", "data")
	v.SetDefault("save_format", "csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_file", "") // empty → built-in catalog

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	v.BindEnv("data_provider", "DATA_PROVIDER")
	v.BindEnv("feed_base_url", "FEED_BASE_URL")
	v.BindEnv("data_dir", "DATA_DIR")
	v.BindEnv("save_format", "SAVE_FORMAT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("catalog_file", "CATALOG_FILE")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
