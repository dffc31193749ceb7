package model

// Bar represents one OHLCV bar (tick/minute/daily etc.).
// Shared between provider, saver and serialization (csv, json, parquet).
type Bar struct {
	Timestamp int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds
	Open      float64 `json:"o" parquet:"o"`
	High      float64 `json:"h" parquet:"h"`
	Low       float64 `json:"l" parquet:"l"`
	Close     float64 `json:"c" parquet:"c"`
	Volume    float64 `json:"v" parquet:"v"`
}
