package agent

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/halvorlinder/Connect-4-AI/game"
)

const (
	MinDepth = 1
	MaxDepth = 10

	MinTimeSeconds = 1
	MaxTimeSeconds = 600

	// budgetDivisor leaves headroom for the pass that is allowed to start
	// just before the budget check and still run to completion.
	budgetDivisor = 7
)

// MinMaxConfig fixes the search mode at construction: either a fixed
// depth in [MinDepth, MaxDepth], or timed iterative deepening with a
// per-move budget in whole seconds in [MinTimeSeconds, MaxTimeSeconds].
type MinMaxConfig struct {
	Rows        int
	Cols        int
	Depth       int
	Timed       bool
	TimeSeconds int
	Stats       *SearchStats
}

// MinMax is the search-based agent. The geometry is built once here and
// shared read-only by every search the agent runs.
type MinMax struct {
	cfg  MinMaxConfig
	geom *game.Geometry
}

func NewMinMax(cfg MinMaxConfig) (*MinMax, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Timed {
		if cfg.TimeSeconds < MinTimeSeconds || cfg.TimeSeconds > MaxTimeSeconds {
			return nil, fmt.Errorf("time budget %ds outside [%d,%d]", cfg.TimeSeconds, MinTimeSeconds, MaxTimeSeconds)
		}
		if _, err := processTime(); err != nil {
			return nil, fmt.Errorf("timed mode needs a readable process clock: %w", err)
		}
	} else {
		if cfg.Depth < MinDepth || cfg.Depth > MaxDepth {
			return nil, fmt.Errorf("depth %d outside [%d,%d]", cfg.Depth, MinDepth, MaxDepth)
		}
	}
	return &MinMax{cfg: cfg, geom: game.NewGeometry(cfg.Rows, cfg.Cols)}, nil
}

func (a *MinMax) NextMove(s game.State) game.Move {
	if a.cfg.Timed {
		return a.timedMove(s)
	}
	mv, value := a.searchPass(s, a.cfg.Depth)
	log.Debug().
		Int("depth", a.cfg.Depth).
		Float64("value", value).
		Int("col", mv.Col).
		Msg("fixed-depth search done")
	return mv
}

// searchPass runs one full bounded search with a fresh transposition map.
func (a *MinMax) searchPass(s game.State, depth int) (game.Move, float64) {
	start := time.Now()
	e := &searcher{geom: a.geom, stats: a.cfg.Stats}
	mv, value := e.bestMove(s, depth)
	if a.cfg.Stats != nil {
		a.cfg.Stats.DepthDurations = append(a.cfg.Stats.DepthDurations, time.Since(start))
		a.cfg.Stats.CompletedDepth = depth
	}
	return mv, value
}

// timedMove deepens one depth at a time and keeps the move of the last
// fully completed pass. Elapsed process time is polled only between
// passes; a pass that overruns the budget still finishes.
func (a *MinMax) timedMove(s game.State) game.Move {
	budget := time.Duration(a.cfg.TimeSeconds*1000/budgetDivisor) * time.Millisecond
	mv, _ := a.searchPass(s, 0)
	start, err := processTime()
	if err != nil {
		log.Error().Err(err).Msg("process clock failed, returning shallow move")
		return mv
	}
	depth := 1
	for {
		elapsed, err := processTime()
		if err != nil {
			log.Error().Err(err).Msg("process clock failed mid-search")
			break
		}
		if elapsed-start > budget {
			break
		}
		mv, _ = a.searchPass(s, depth)
		depth++
	}
	log.Debug().
		Int("completed_depth", depth-1).
		Int("col", mv.Col).
		Msg("timed search done")
	return mv
}
