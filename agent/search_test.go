package agent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/halvorlinder/Connect-4-AI/game"
)

// plainMinMax is an unpruned exhaustive reference walk: no alpha-beta, no
// memoization, no symmetry truncation.
func plainMinMax(g *game.Geometry, sc game.ScoredState, depth int) float64 {
	if math.IsInf(sc.Eval, 0) || depth == 0 {
		return sc.Eval
	}
	moves := game.Legal(sc.State)
	if len(moves) == 0 {
		return sc.Eval
	}
	maximizing := sc.State.Turn == game.P1
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, mv := range moves {
		next, err := g.Next(sc, mv)
		if err != nil {
			continue
		}
		value := plainMinMax(g, next, depth-1)
		if maximizing && value > best {
			best = value
		}
		if !maximizing && value < best {
			best = value
		}
	}
	return best
}

func TestMinMaxMatchesExhaustiveWalk(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {4, 5}} {
		rows, cols := dims[0], dims[1]
		g := game.NewGeometry(rows, cols)
		r := rand.New(rand.NewSource(23))
		states := append([]game.State{game.NewState(rows, cols)}, game.RandomPositions(r, rows, cols, 25)...)
		for _, s := range states {
			if game.Result(s) != game.OutcomeNone {
				continue
			}
			sc := game.NewScoredState(s)
			for depth := 0; depth <= 3; depth++ {
				e := &searcher{geom: g}
				got := e.minMax(sc, depth, math.Inf(-1), math.Inf(1), make(map[string]float64))
				want := plainMinMax(g, sc, depth)
				if got != want {
					t.Fatalf("%dx%d depth %d: pruned search %f, exhaustive %f\nkey %q",
						rows, cols, depth, got, want, s.Key())
				}
			}
		}
	}
}

func TestRootValueMatchesExhaustiveWalk(t *testing.T) {
	g := game.NewGeometry(4, 4)
	r := rand.New(rand.NewSource(31))
	for _, s := range game.RandomPositions(r, 4, 4, 20) {
		if game.Result(s) != game.OutcomeNone {
			continue
		}
		for depth := 0; depth <= 2; depth++ {
			e := &searcher{geom: g}
			_, got := e.bestMove(s, depth)
			// The root layer adds one ply on top of the searched depth.
			want := plainMinMax(g, game.NewScoredState(s), depth+1)
			if got != want {
				t.Fatalf("depth %d: root value %f, exhaustive %f", depth, got, want)
			}
		}
	}
}

func TestDepthOneUtilitiesFiniteAndDeterministic(t *testing.T) {
	s := game.NewState(6, 7)
	g := game.NewGeometry(6, 7)
	root := game.NewScoredState(s)
	for _, mv := range game.Legal(s) {
		next, err := g.Next(root, mv)
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		e := &searcher{geom: g}
		value := e.minMax(next, 1, math.Inf(-1), math.Inf(1), make(map[string]float64))
		if math.IsNaN(value) || math.IsInf(value, 0) {
			t.Fatalf("column %d utility must be finite, got %f", mv.Col, value)
		}
	}
	e := &searcher{geom: g}
	first, _ := e.bestMove(s, 1)
	e = &searcher{geom: g}
	second, _ := e.bestMove(s, 1)
	if !first.Equals(second) {
		t.Fatalf("depth-1 move not deterministic: %+v vs %+v", first, second)
	}
	if _, err := game.Play(s, first); err != nil {
		t.Fatalf("depth-1 move %+v is illegal: %v", first, err)
	}
}

func TestRootFindsImmediateWin(t *testing.T) {
	s := game.StateFromGrid([][]int{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{2, 2, 2, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 0, 0},
	})
	if s.Turn != game.P1 {
		t.Fatalf("expected P1 to move")
	}
	e := &searcher{geom: game.NewGeometry(6, 7)}
	mv, value := e.bestMove(s, 1)
	if mv.Col != 3 || mv.Row != 0 {
		t.Fatalf("expected the completing move in column 3, got %+v", mv)
	}
	if !math.IsInf(value, 1) {
		t.Fatalf("expected a winning utility, got %f", value)
	}
}

func TestSymmetricRootPrunesMirrors(t *testing.T) {
	root := game.NewScoredState(game.NewState(6, 7))
	moves := prunedLegal(root)
	if len(moves) != 4 {
		t.Fatalf("symmetric 7-column board should expand 4 moves, got %d", len(moves))
	}
	for i, mv := range moves {
		if mv.Col != i {
			t.Fatalf("expected ascending columns 0..3, got %+v", moves)
		}
	}
}
