package engine

import (
	"sort"

	"github.com/lgbarn/chess-sim-go/internal/chess"
	"github.com/lgbarn/chess-sim-go/internal/worker"
)

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide counts the leaves below each legal root move, spreading the
// root moves over workers goroutines. Entries come back in LegalMoves order.
// The board is not modified.
func PerftDivide(board *chess.Board, depth, workers int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(countSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1))
	pool.Start()

	for i, move := range moves {
		child := board.Copy()
		commit(child, move, Classify(child, move.From, move.To))
		pool.Submit(worker.WorkItem{Board: child, Move: move, Depth: depth - 1, Index: i})
	}
	pool.Close()

	entries := make([]DivideEntry, len(moves))
	for r := range pool.Results() {
		entries[r.Index] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}

func countSubtree(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: Perft(item.Board, item.Depth),
	}
}

// DivideTotal sums the counts of a divide.
func DivideTotal(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

// SortDivide orders entries by move text, the usual order for comparing
// against other move generators.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}
