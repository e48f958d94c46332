package solve

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/banastack/bananagrams/pkg/board"
	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

// Dispatcher shards the root frame's candidate-word list across a
// worker pool (C7). Workers is the number of goroutines to run; zero
// means one per logical CPU.
type Dispatcher struct {
	Workers int
}

// Solve runs a cold, parallel search for a board using every tile in
// initial. It returns the winning board (nil if none), the total
// placement-attempt count across all workers, and whether a solution
// was found.
func (d *Dispatcher) Solve(dict *dictionary.Index, initial hand.Hand, extra int, cap int64) (*board.Board, int64, bool) {
	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rootCandidates := dict.Playable(initial, extra)
	if len(rootCandidates) == 0 {
		return nil, 0, false
	}

	shards := roundRobinShard(rootCandidates, workers)

	found := &atomic.Bool{}
	iterations := &atomic.Int64{}
	var mu sync.Mutex
	var winner *board.Board

	var g errgroup.Group
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		shard := shard
		g.Go(func() error {
			state := &searchState{dict: dict, extra: extra, cap: cap, iterations: iterations, found: found}
			workerBoard := board.New()
			result, ok := state.search(workerBoard, initial, board.Horizontal, 0, shard)
			if !ok {
				return nil
			}
			if found.CompareAndSwap(false, true) {
				mu.Lock()
				winner = result
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return winner, iterations.Load(), winner != nil
}

// roundRobinShard splits words across n shards by round-robin
// assignment rather than contiguous slicing. Since Playable already
// orders candidates length-descending, a contiguous split would hand
// one worker only the longest (and most expensive to place) words;
// round-robin spreads long and short root candidates evenly across
// every shard.
func roundRobinShard(words []dictionary.Word, n int) [][]dictionary.Word {
	if n < 1 {
		n = 1
	}
	shards := make([][]dictionary.Word, n)
	for i, w := range words {
		shards[i%n] = append(shards[i%n], w)
	}
	return shards
}

// ColdSolve runs a single full solve attempt from an empty board,
// trying the single-word special case (C5) before falling back to
// the parallel dispatcher (C7).
func ColdSolve(dict *dictionary.Index, extra int, cap int64, initial hand.Hand) (*board.Board, int64, bool) {
	if b, ok := SingleWord(dict, initial); ok {
		return b, 0, true
	}
	d := &Dispatcher{}
	return d.Solve(dict, initial, extra, cap)
}
