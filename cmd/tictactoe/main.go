package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/bot"
	"ctchen222/Tic-Tac-Toe-Term/internal/config"
	"ctchen222/Tic-Tac-Toe-Term/internal/logger"
	"ctchen222/Tic-Tac-Toe-Term/internal/player"
	"ctchen222/Tic-Tac-Toe-Term/internal/session"
	"ctchen222/Tic-Tac-Toe-Term/internal/telemetry"
	"ctchen222/Tic-Tac-Toe-Term/internal/ui"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tictactoe crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	difficulty := flag.String("difficulty", "", "computer difficulty: easy, medium or hard")
	logFile := flag.String("log-file", "", "file to write logs to")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *difficulty != "" {
		cfg.Bot.Difficulty = *difficulty
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout belongs to the terminal UI
	out, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer out.Close()

	logger.Init(cfg.Level(), out)

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry, out)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	slog.InfoContext(ctx, "Starting session", "seed", seed, "bot.difficulty", cfg.Bot.Difficulty)

	term, err := ui.Open(rng)
	if err != nil {
		return err
	}
	defer term.Close()

	// Closing the screen unblocks the pending key read.
	go func() {
		<-ctx.Done()
		term.Close()
	}()

	difficulty := bot.Difficulty(cfg.Bot.Difficulty)
	selector := bot.NewSelector(difficulty, rng, bot.WithFumble(cfg.Bot.Fumble()))
	computer := func() player.Player {
		return bot.NewComputer(selector, bot.WithThinkDelay(cfg.Bot.ThinkDelay))
	}

	err = session.New(term, computer, rng).Run(ctx)
	if err != nil && ctx.Err() != nil && (errors.Is(err, ui.ErrScreenClosed) || errors.Is(err, context.Canceled)) {
		slog.Info("Session interrupted")
		return nil
	}
	if err != nil {
		slog.Error("Session ended with error", "error", err)
		return err
	}
	slog.Info("Session finished")
	return nil
}
