package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/readbridge/readbridge-mcp/internal/audit"
	"github.com/readbridge/readbridge-mcp/internal/catalog"
	"github.com/readbridge/readbridge-mcp/internal/config"
	"github.com/readbridge/readbridge-mcp/internal/logger"
	"github.com/readbridge/readbridge-mcp/internal/mcp"
	"github.com/readbridge/readbridge-mcp/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Error("failed to ensure directories", "error", err)
		os.Exit(1)
	}

	registry, err := catalog.New()
	if err != nil {
		logger.Error("failed to build tool catalog", "error", err)
		os.Exit(1)
	}

	var auditStore *audit.Store
	if cfg.Audit.Enabled {
		auditStore, err = audit.Open(cfg.Audit.DBPath)
		if err != nil {
			// The server is fully functional without the invocation log.
			logger.Warn("audit log disabled", "path", cfg.Audit.DBPath, "error", err)
		} else {
			defer auditStore.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	handler := mcp.NewHandler(registry, auditStore)
	logger.Info("server ready",
		"name", version.ServerName,
		"version", version.Version,
		"tools", len(registry.Names()))

	if err := mcp.ServeStdio(ctx, handler); err != nil && err != context.Canceled {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
