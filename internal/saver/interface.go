package saver

import (
	"strings"

	"fx-data/internal/model"
)

// Saver is the abstraction for persisting one fetched bar sequence to a file.
// High-level (app) injects the implementation; the runner only depends on
// this interface.
type Saver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// New creates an implementation by format (csv, json, parquet).
// Returns nil if format not supported.
func New(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
