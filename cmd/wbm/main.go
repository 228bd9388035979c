// Package main is the entry point for the interactive bending machine.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wirebender/internal/config"
	"github.com/Faultbox/wirebender/internal/game"
	"github.com/Faultbox/wirebender/internal/logger"
)

func main() {
	// Flags first, Load layers them on top.
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Wire Bending Machine ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start simulator", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("simulator error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulator closed normally")
}
