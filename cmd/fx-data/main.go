package main

import (
	"context"
	"log/slog"
	"os"

	"fx-data/internal/download"
	"fx-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.DP.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using data provider", "provider", a.DP.GetName())
	slog.Info("catalog loaded", "requests", len(a.Requests))

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}
	slog.Info("save dir", "dir", cfg.DataDir, "format", a.Saver.Extension())

	runner := download.NewRunner(a.DP, a.Saver, cfg.DataDir)
	runner.Run(context.Background(), a.Requests)
}
