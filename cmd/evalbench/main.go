// Command evalbench compares the full-scan evaluator against the
// incremental one over random positions and writes a CPU profile.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/halvorlinder/Connect-4-AI/game"
)

func main() {
	rows := flag.Int("rows", 6, "board rows")
	cols := flag.Int("cols", 7, "board columns")
	positions := flag.Int("positions", 2000, "random positions to evaluate")
	seed := flag.Int64("seed", 42, "position generator seed")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	defer profile.Start(profile.ProfilePath(".")).Stop()

	r := rand.New(rand.NewSource(*seed))
	states := game.RandomPositions(r, *rows, *cols, *positions)
	geom := game.NewGeometry(*rows, *cols)

	type job struct {
		sc game.ScoredState
		mv game.Move
	}
	jobs := make([]job, 0, len(states))
	for _, s := range states {
		if game.Result(s) != game.OutcomeNone {
			continue
		}
		sc := game.NewScoredState(s)
		for _, mv := range game.Legal(s) {
			jobs = append(jobs, job{sc: sc, mv: mv})
		}
	}

	start := time.Now()
	for _, j := range jobs {
		next, err := game.Play(j.sc.State, j.mv)
		if err != nil {
			log.Fatal().Err(err).Msg("replay failed")
		}
		_ = game.Eval(next)
	}
	fullElapsed := time.Since(start)

	start = time.Now()
	for _, j := range jobs {
		if _, err := geom.Next(j.sc, j.mv); err != nil {
			log.Fatal().Err(err).Msg("incremental step failed")
		}
	}
	fastElapsed := time.Since(start)

	log.Info().
		Int("evaluations", len(jobs)).
		Dur("full", fullElapsed).
		Dur("incremental", fastElapsed).
		Float64("speedup", float64(fullElapsed)/float64(fastElapsed)).
		Msg("evaluator comparison done")
}
