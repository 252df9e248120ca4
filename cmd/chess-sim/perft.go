// perft.go - Move generator diagnostics
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lgbarn/chess-sim-go/internal/config"
	"github.com/lgbarn/chess-sim-go/internal/engine"
)

// numWorkers resolves the -workers flag.
func numWorkers() int {
	if *workers <= 0 {
		return runtime.NumCPU()
	}
	return *workers
}

// runPerft prints the leaf count below every legal move of the game's
// position, then the total.
func runPerft(cfg *config.Config, game *engine.Game, depth, workers int) error {
	start := time.Now()
	entries := engine.PerftDivide(game.Board(), depth, workers)
	engine.SortDivide(entries)

	for _, e := range entries {
		if _, err := fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", engine.DivideTotal(entries))

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d) with %d workers took %v\n", depth, workers, time.Since(start))
	}
	return nil
}
