package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stormdotcom/friday-code-gpt/pkg/config"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

func main() {
	// Initialize logging system
	utils.InitLogger()
	logger := utils.GetLogger()

	if _, err := config.EnsureDefaultConfig(); err != nil {
		logger.Warn("Failed to write default config", "error", err)
	}

	cfg, configFile, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Info("Config loaded", "path", configFile)

	server, err := NewServer(cfg)
	if err != nil {
		logger.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until the context is cancelled and the listener drains.
	if err := server.Start(ctx); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
