package solve

import (
	"testing"

	"github.com/banastack/bananagrams/pkg/hand"
)

func TestDispatcherSolvesSimpleHand(t *testing.T) {
	dict := testDict(t)
	d := &Dispatcher{Workers: 2}
	h, _ := hand.FromLetters("BAT")
	result, iterations, ok := d.Solve(dict, h, 2, 100_000)
	if !ok {
		t.Fatal("expected dispatcher to find a solution for BAT")
	}
	if result.LetterCount() != h {
		t.Fatalf("expected board letters to equal hand, got %v", result.LetterCount())
	}
	if iterations < 0 {
		t.Fatal("expected non-negative iteration count")
	}
}

func TestDispatcherNoSolution(t *testing.T) {
	dict := testDict(t)
	d := &Dispatcher{Workers: 4}
	h, _ := hand.FromLetters("QQ")
	_, _, ok := d.Solve(dict, h, 2, 10_000)
	if ok {
		t.Fatal("expected no solution for QQ")
	}
}

func TestColdSolvePrefersSingleWord(t *testing.T) {
	dict := testDict(t)
	h, _ := hand.FromLetters("BAT")
	result, iterations, ok := ColdSolve(dict, 2, 100_000, h)
	if !ok {
		t.Fatal("expected a cold solve to succeed for BAT")
	}
	if iterations != 0 {
		t.Fatalf("expected the single-word special case to short-circuit with 0 dispatcher iterations, got %d", iterations)
	}
	if result.LetterCount() != h {
		t.Fatal("expected board letters to equal hand")
	}
}

func TestRoundRobinShardDistributesEvenly(t *testing.T) {
	dict := testDict(t)
	words := dict.All()
	shards := roundRobinShard(words, 3)
	total := 0
	for _, s := range shards {
		total += len(s)
	}
	if total != len(words) {
		t.Fatalf("expected shards to partition all %d words, got %d", len(words), total)
	}
	max, min := len(shards[0]), len(shards[0])
	for _, s := range shards {
		if len(s) > max {
			max = len(s)
		}
		if len(s) < min {
			min = len(s)
		}
	}
	if max-min > 1 {
		t.Fatalf("expected round-robin shards to differ in size by at most 1, got max=%d min=%d", max, min)
	}
}
