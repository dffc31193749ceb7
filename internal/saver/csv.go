package saver

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"fx-data/internal/model"
)

// DatetimeLayout is the ISO-8601 form of the bar timestamp, UTC with
// millisecond precision. Deriving it from the epoch-ms timestamp is pure and
// order-preserving, so a written row parses back to the original bar exactly.
const DatetimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Header is the fixed first row of every CSV file.
var Header = []string{"timestamp", "datetime", "open", "high", "low", "close", "volume"}

// CSVSaver writes bars as CSV: one header row plus one row per bar,
// columns timestamp,datetime,open,high,low,close,volume. The file at path is
// truncated and written in one pass; atomicity is not guaranteed.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write(Row(b)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// Row serializes one bar to its CSV fields. Floats use the shortest exact
// representation so parsing reproduces the value bit for bit.
func Row(b model.Bar) []string {
	return []string{
		strconv.FormatInt(b.Timestamp, 10),
		Datetime(b.Timestamp),
		floatStr(b.Open),
		floatStr(b.High),
		floatStr(b.Low),
		floatStr(b.Close),
		floatStr(b.Volume),
	}
}

// Datetime converts an epoch-ms timestamp to its ISO-8601 UTC string.
func Datetime(ts int64) string {
	return time.UnixMilli(ts).UTC().Format(DatetimeLayout)
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
