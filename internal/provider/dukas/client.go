package dukas

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"fx-data/internal/model"
)

// DefaultBaseURL is the production candle feed endpoint.
const DefaultBaseURL = "https://freeserv.dukascopy.com/2.0"

// Client fetches historical candles from the Dukascopy-style JSON feed.
// A range fetch is a single blocking request; large ranges can take minutes,
// so no client-side timeout is set.
type Client struct {
	client *resty.Client
}

// NewClient creates a Client against baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(0)
	return &Client{client: c}
}

// FetchHistory requests candles for instrument over [from, to] at the given
// timeframe and price side. Returned bars are passed through as-is: the feed
// owns ordering and range inclusivity.
func (c *Client) FetchHistory(ctx context.Context, instrument string, tf model.Timeframe, from, to time.Time, side model.PriceSide) ([]model.Bar, error) {
	var result historyResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"instrument": instrument,
			"timeframe":  string(tf),
			"from":       strconv.FormatInt(from.UnixMilli(), 10),
			"to":         strconv.FormatInt(to.UnixMilli(), 10),
			"side":       string(side),
			"format":     "json",
		}).
		SetResult(&result).
		Get("/candles")
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", instrument, tf, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch %s %s: feed returned status %d", instrument, tf, resp.StatusCode())
	}

	bars := make([]model.Bar, 0, len(result.Candles))
	for _, raw := range result.Candles {
		bars = append(bars, raw.toBar())
	}
	return bars, nil
}

// Close releases client resources.
func (c *Client) Close() error {
	return nil
}
