// mapgen prints a generated level, or serves level generation to
// websocket viewers.
//
// Usage:
//
//	mapgen [-depth 1] [-seed N] [-width 80] [-height 50] [-history] [-color auto|always|never]
//	mapgen -serve :8080 [-delay 150ms]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"shadoblade/internal/mapbuilder"
	"shadoblade/internal/mapview"
	"shadoblade/internal/rng"
)

func main() {
	depth := flag.Int("depth", 1, "level depth to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	width := flag.Int("width", 80, "map width")
	height := flag.Int("height", 50, "map height")
	history := flag.Bool("history", false, "print every builder stage before the level")
	colorMode := flag.String("color", "auto", "color output: auto, always or never")
	serve := flag.String("serve", "", "listen address for the websocket viewer")
	delay := flag.Duration("delay", 150*time.Millisecond, "pause between streamed frames")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *serve != "" {
		http.Handle("/", mapview.NewServer(*width, *height, *delay, logger))
		logger.Info("map viewer listening", "addr", *serve)
		if err := http.ListenAndServe(*serve, nil); err != nil {
			logger.Error("map viewer stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	colored, err := useColor(*colorMode, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(os.Stdout, *depth, *seed, *width, *height, *history, colored); err != nil {
		logger.Error("dump failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, depth int, seed int64, width, height int, history, colored bool) error {
	if depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", depth)
	}
	chain := mapbuilder.LevelWithHistory(depth, rng.New(seed), width, height)
	if history {
		for i, snap := range chain.Data.History {
			fmt.Fprintf(w, "-- stage %d/%d --\n", i+1, len(chain.Data.History))
			if err := mapbuilder.Dump(w, &mapbuilder.BuildData{Map: snap}, colored); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(w, "-- %s (depth %d, seed %d) --\n", chain.Data.Map.Name, depth, seed)
	return mapbuilder.Dump(w, &chain.Data, colored)
}

func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("unknown -color mode %q", mode)
}
