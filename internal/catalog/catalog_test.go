package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		Instrument: "eurusd",
		Timeframe:  "m1",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-02",
		OutputFile: "out.csv",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"missing instrument", func(r *Request) { r.Instrument = "" }, true},
		{"uppercase instrument", func(r *Request) { r.Instrument = "EURUSD" }, true},
		{"unknown timeframe", func(r *Request) { r.Timeframe = "m2" }, true},
		{"malformed start date", func(r *Request) { r.StartDate = "01/01/2024" }, true},
		{"start after end", func(r *Request) { r.StartDate = "2024-02-01" }, true},
		{"start equals end", func(r *Request) { r.EndDate = r.StartDate }, false},
		{"missing output file", func(r *Request) { r.OutputFile = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			err := Validate(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequest_ParsedFields(t *testing.T) {
	r := validRequest()
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), r.End())
	assert.Equal(t, "m1", string(r.TF()))
}

func TestDefault_AllEntriesValid(t *testing.T) {
	requests := Default()
	require.NotEmpty(t, requests)
	for _, r := range requests {
		assert.NoError(t, Validate(r), "instrument %s", r.Instrument)
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	requests, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), requests)
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
requests:
  - instrument: eurusd
    timeframe: m1
    start_date: "2024-01-01"
    end_date: "2024-01-31"
    output_file: eurusd_m1.csv
  - instrument: xauusd
    timeframe: h1
    start_date: "2023-06-01"
    end_date: "2024-01-31"
    output_file: xauusd_h1.csv
`), 0644))

	requests, err := Load(path)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "eurusd", requests[0].Instrument)
	assert.Equal(t, "xauusd", requests[1].Instrument)
	assert.Equal(t, "xauusd_h1.csv", requests[1].OutputFile)
}

func TestLoad_InvalidEntryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
requests:
  - instrument: eurusd
    timeframe: m2
    start_date: "2024-01-01"
    end_date: "2024-01-31"
    output_file: eurusd.csv
`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown timeframe")
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyCatalogFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requests: []\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "no requests")
}
