package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"shadoblade/internal/game"
	"shadoblade/internal/gamelog"
	"shadoblade/internal/store"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the run")
	locale := flag.String("locale", "", "directory holding message catalogues")
	lang := flag.String("lang", "en", "message catalogue language")
	logFile := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	if err := run(*seed, *locale, *lang, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, locale, lang, logFile string) error {
	// The screen owns the terminal, so diagnostics only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}
	if locale != "" {
		gamelog.LoadLocale(locale, lang)
	}

	levels, err := store.FromEnv(logger)
	if err != nil {
		return err
	}
	defer levels.Close()

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	cfg.Run = fmt.Sprintf("local-%d", seed)
	cfg.Store = levels
	cfg.Logger = logger
	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g.Run(screen)
	if err := levels.DeleteRun(cfg.Run); err != nil {
		logger.Warn("could not clear stored levels", "err", err)
	}
	return nil
}
