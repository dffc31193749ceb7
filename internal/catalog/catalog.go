package catalog

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"fx-data/internal/model"
)

const dateLayout = "2006-01-02"

// Request describes one download: which instrument, at which granularity,
// over which date range, and where the result file goes.
// Requests are immutable once loaded; order only affects iteration and the
// final report.
type Request struct {
	Instrument string `mapstructure:"instrument" validate:"required,lowercase"`
	Timeframe  string `mapstructure:"timeframe" validate:"required"`
	StartDate  string `mapstructure:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `mapstructure:"end_date" validate:"required,datetime=2006-01-02"`
	OutputFile string `mapstructure:"output_file" validate:"required"`
}

// Start returns the parsed start date (UTC midnight). Call after validation.
func (r Request) Start() time.Time {
	t, _ := time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	return t
}

// End returns the parsed end date (UTC midnight). Call after validation.
func (r Request) End() time.Time {
	t, _ := time.ParseInLocation(dateLayout, r.EndDate, time.UTC)
	return t
}

// TF returns the parsed timeframe. Call after validation.
func (r Request) TF() model.Timeframe {
	tf, _ := model.ParseTimeframe(r.Timeframe)
	return tf
}

var validate = validator.New()

// Validate checks one request: struct tags, known timeframe, start<=end.
func Validate(r Request) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("request %q: %w", r.Instrument, err)
	}
	if _, ok := model.ParseTimeframe(r.Timeframe); !ok {
		return fmt.Errorf("request %q: unknown timeframe %q", r.Instrument, r.Timeframe)
	}
	if r.Start().After(r.End()) {
		return fmt.Errorf("request %q: start_date %s after end_date %s", r.Instrument, r.StartDate, r.EndDate)
	}
	return nil
}

// Default returns the built-in catalog used when no catalog file is configured.
func Default() []Request {
	return []Request{
		{Instrument: "eurusd", Timeframe: "m1", StartDate: "2024-01-01", EndDate: "2024-06-30", OutputFile: "eurusd_m1_2024H1.csv"},
		{Instrument: "gbpusd", Timeframe: "m1", StartDate: "2024-01-01", EndDate: "2024-06-30", OutputFile: "gbpusd_m1_2024H1.csv"},
		{Instrument: "usdjpy", Timeframe: "h1", StartDate: "2023-01-01", EndDate: "2024-06-30", OutputFile: "usdjpy_h1_2023_2024.csv"},
		{Instrument: "xauusd", Timeframe: "d1", StartDate: "2020-01-01", EndDate: "2024-06-30", OutputFile: "xauusd_d1_2020_2024.csv"},
	}
}

// Load reads the catalog. Empty path → built-in default catalog.
// The file is read once, before any fetch; every entry is validated at load
// time so malformed dates or missing fields fail here instead of surfacing
// later as provider errors.
func Load(path string) ([]Request, error) {
	if path == "" {
		return Default(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var requests []Request
	if err := v.UnmarshalKey("requests", &requests); err != nil {
		return nil, fmt.Errorf("unmarshal catalog %s: %w", path, err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("catalog %s has no requests", path)
	}
	for _, r := range requests {
		if err := Validate(r); err != nil {
			return nil, err
		}
	}
	return requests, nil
}
