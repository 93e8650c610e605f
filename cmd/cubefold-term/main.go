// Package main runs the fold animation as a terminal control surface.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/engine/audio"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
	"github.com/Faultbox/cubefold/internal/term"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The console core would draw over the screen, so log to the file only.
	fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("terminal error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var opts []fold.Option
	if cfg.Audio.Enabled {
		a := audio.New(cfg.Audio.Volume)
		if err := a.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer a.Close()
			opts = append(opts, fold.WithObserver(a.FoldObserver()))
		}
	}

	net, err := demo.NewFoldNet(cfg.Animation, opts...)
	if err != nil {
		return err
	}
	if err := net.Enter(); err != nil {
		return fmt.Errorf("entering fold net: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("terminal started")
	return term.New(screen, net).Run()
}
