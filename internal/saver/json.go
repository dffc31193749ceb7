package saver

import (
	"encoding/json"
	"os"

	"fx-data/internal/model"
)

// JSONSaver writes bars as a JSON array (indented).
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bars); err != nil {
		return err
	}
	return f.Close()
}
