package provider

import (
	"fx-data/internal/provider/dukas"
)

// DukasProvider is a HistoryProvider implementation backed by the Dukascopy
// candle feed. It embeds *dukas.Client to expose fetch capabilities with
// minimal boilerplate.
type DukasProvider struct {
	*dukas.Client
}

// NewDukasProvider creates a new Dukascopy-backed HistoryProvider.
func NewDukasProvider(baseURL string) *DukasProvider {
	return &DukasProvider{
		Client: dukas.NewClient(baseURL),
	}
}

// GetName returns provider name
func (p *DukasProvider) GetName() string {
	return "Dukascopy"
}
