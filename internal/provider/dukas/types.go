package dukas

import "fx-data/internal/model"

// barRaw is one candle as returned by the feed.
type barRaw struct {
	Timestamp int64   `json:"t"` // Unix timestamp in milliseconds
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
}

func (b barRaw) toBar() model.Bar {
	return model.Bar{
		Timestamp: b.Timestamp,
		Open:      b.Open,
		High:      b.High,
		Low:       b.Low,
		Close:     b.Close,
		Volume:    b.Volume,
	}
}

// historyResponse is the candle feed response envelope.
type historyResponse struct {
	Instrument string   `json:"instrument"`
	Timeframe  string   `json:"timeframe"`
	Candles    []barRaw `json:"candles"`
}
