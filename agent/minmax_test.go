package agent

import (
	"math/rand"
	"testing"

	"github.com/halvorlinder/Connect-4-AI/game"
)

func TestNewMinMaxValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  MinMaxConfig
		ok   bool
	}{
		{"depth lower bound", MinMaxConfig{Rows: 6, Cols: 7, Depth: MinDepth}, true},
		{"depth upper bound", MinMaxConfig{Rows: 6, Cols: 7, Depth: MaxDepth}, true},
		{"depth zero", MinMaxConfig{Rows: 6, Cols: 7, Depth: 0}, false},
		{"depth too deep", MinMaxConfig{Rows: 6, Cols: 7, Depth: MaxDepth + 1}, false},
		{"time lower bound", MinMaxConfig{Rows: 6, Cols: 7, Timed: true, TimeSeconds: MinTimeSeconds}, true},
		{"time upper bound", MinMaxConfig{Rows: 6, Cols: 7, Timed: true, TimeSeconds: MaxTimeSeconds}, true},
		{"time zero", MinMaxConfig{Rows: 6, Cols: 7, Timed: true, TimeSeconds: 0}, false},
		{"time too long", MinMaxConfig{Rows: 6, Cols: 7, Timed: true, TimeSeconds: MaxTimeSeconds + 1}, false},
		{"zero rows", MinMaxConfig{Rows: 0, Cols: 7, Depth: 4}, false},
		{"zero cols", MinMaxConfig{Rows: 6, Cols: 0, Depth: 4}, false},
	}
	for _, tc := range cases {
		_, err := NewMinMax(tc.cfg)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestFixedDepthReturnsLegalMoves(t *testing.T) {
	a, err := NewMinMax(MinMaxConfig{Rows: 6, Cols: 7, Depth: 2})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	r := rand.New(rand.NewSource(47))
	for _, s := range game.RandomPositions(r, 6, 7, 30) {
		if game.Result(s) != game.OutcomeNone {
			continue
		}
		mv := a.NextMove(s)
		if _, err := game.Play(s, mv); err != nil {
			t.Fatalf("agent picked illegal move %+v: %v\nkey %q", mv, err, s.Key())
		}
	}
}

func TestTimedModeCompletes(t *testing.T) {
	stats := &SearchStats{}
	a, err := NewMinMax(MinMaxConfig{Rows: 4, Cols: 4, Timed: true, TimeSeconds: 1, Stats: stats})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	s := game.NewState(4, 4)
	mv := a.NextMove(s)
	if _, err := game.Play(s, mv); err != nil {
		t.Fatalf("timed agent picked illegal move %+v: %v", mv, err)
	}
	// Depth 0 always completes before the first budget check.
	if len(stats.DepthDurations) < 1 {
		t.Fatalf("expected at least one completed pass")
	}
	if stats.Nodes == 0 {
		t.Fatalf("expected node counts to be collected")
	}
}

func TestStatsCollection(t *testing.T) {
	stats := &SearchStats{}
	a, err := NewMinMax(MinMaxConfig{Rows: 6, Cols: 7, Depth: 3, Stats: stats})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	a.NextMove(game.NewState(6, 7))
	if stats.Nodes == 0 || stats.TTProbes == 0 {
		t.Fatalf("expected probe counts, got %+v", stats)
	}
	if stats.CompletedDepth != 3 {
		t.Fatalf("expected completed depth 3, got %d", stats.CompletedDepth)
	}
	if len(stats.DepthDurations) != 1 {
		t.Fatalf("expected one pass duration, got %d", len(stats.DepthDurations))
	}
	if stats.TTHits > stats.TTProbes {
		t.Fatalf("hits %d exceed probes %d", stats.TTHits, stats.TTProbes)
	}
}

func TestProcessClockAdvances(t *testing.T) {
	before, err := processTime()
	if err != nil {
		t.Fatalf("process clock unavailable: %v", err)
	}
	spin := 0
	for i := 0; i < 1_000_000; i++ {
		spin += i % 7
	}
	_ = spin
	after, err := processTime()
	if err != nil {
		t.Fatalf("process clock unavailable: %v", err)
	}
	if after < before {
		t.Fatalf("process clock went backwards: %v -> %v", before, after)
	}
}
