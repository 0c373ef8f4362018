package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/lunarlander/assets"
	"github.com/spacehole-rogue/lunarlander/internal/audio"
	"github.com/spacehole-rogue/lunarlander/internal/config"
	"github.com/spacehole-rogue/lunarlander/internal/game"
	"github.com/spacehole-rogue/lunarlander/internal/logging"
	"github.com/spacehole-rogue/lunarlander/internal/records"
	"github.com/spacehole-rogue/lunarlander/internal/rng"
	"github.com/spacehole-rogue/lunarlander/internal/tty"
	"github.com/spacehole-rogue/lunarlander/internal/world"
)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	logPath := flag.String("log", "lander-tty.log", "log file (the terminal is busy with the game)")
	flag.Parse()

	if err := run(*configDir, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "lander-tty: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, logPath string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.NewFile(cfg.LogLevel, logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	tiers, err := world.LoadTiers(assets.Tiers)
	if err != nil {
		return fmt.Errorf("parse tiers: %w", err)
	}

	store, err := records.Open(cfg.Records.Backend, cfg.Records.AppName, cfg.Records.Path)
	if err != nil {
		logger.Warn().Err(err).Str("backend", cfg.Records.Backend).Msg("leaderboard falls back to memory")
		store = records.NewMemory()
	}
	defer store.Close()

	notifier, closeAudio := audio.OpenSpeaker(cfg.Audio, logger)
	defer closeAudio()

	session := game.NewSession(game.Deps{
		Source:   rng.New(cfg.Seed),
		Notifier: notifier,
		Records:  store,
		Logger:   logger,
		Tiers:    tiers,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("backend", cfg.Records.Backend).Msg("starting")
	tty.Run(ctx, screen, session, tty.NewInput(cfg.TTY.ThrustHoldTicks), logger)
	return nil
}
