package provider

import (
	"context"
	"time"

	"fx-data/internal/model"
)

// HistoryProvider is the abstraction used by the runner when fetching
// historical bars. Implementations own their transport and resource cleanup;
// the date range inclusivity and bar ordering are provider-defined.
type HistoryProvider interface {
	GetName() string
	FetchHistory(ctx context.Context, instrument string, tf model.Timeframe, from, to time.Time, side model.PriceSide) ([]model.Bar, error)
	Close() error
}
