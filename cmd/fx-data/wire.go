//go:build wireinject
// +build wireinject

package main

import (
	"fx-data/internal/app"
	"fx-data/internal/catalog"
	"fx-data/internal/provider"
	"fx-data/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	DP       provider.HistoryProvider
	Saver    saver.Saver
	Requests []catalog.Request
}

// InitializeApp builds App (Config + provider + saver + catalog) via Wire.
// Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSaver,
		app.ProvideCatalog,
		app.CreateProvider,
		wire.Struct(new(App), "Config", "DP", "Saver", "Requests"),
	)
	return nil, nil
}
