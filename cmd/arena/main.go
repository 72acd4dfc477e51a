// Command arena plays batches of agent-vs-agent matches and tallies the
// results. Games are independent and run concurrently; the search inside
// each game stays single-threaded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/halvorlinder/Connect-4-AI/agent"
	"github.com/halvorlinder/Connect-4-AI/cli"
	"github.com/halvorlinder/Connect-4-AI/game"
)

// parseAgentSpec builds a fresh agent from a textual spec:
//
//	random              uniform random mover
//	minmax:<depth>      fixed-depth search
//	minmax:timed:<sec>  timed iterative deepening
func parseAgentSpec(spec string, rows, cols int, seed int64) (agent.Agent, error) {
	parts := strings.Split(spec, ":")
	switch {
	case spec == "random":
		return agent.NewRandom(seed), nil
	case len(parts) == 2 && parts[0] == "minmax":
		depth, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad depth in %q: %w", spec, err)
		}
		return agent.NewMinMax(agent.MinMaxConfig{Rows: rows, Cols: cols, Depth: depth})
	case len(parts) == 3 && parts[0] == "minmax" && parts[1] == "timed":
		seconds, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("bad time budget in %q: %w", spec, err)
		}
		return agent.NewMinMax(agent.MinMaxConfig{Rows: rows, Cols: cols, Timed: true, TimeSeconds: seconds})
	default:
		return nil, fmt.Errorf("unknown agent spec %q", spec)
	}
}

func main() {
	games := flag.Int("n", 100, "number of games to play")
	workers := flag.Int("workers", 4, "number of games running at once")
	rows := flag.Int("rows", 6, "board rows")
	cols := flag.Int("cols", 7, "board columns")
	p1Spec := flag.String("p1", "random", "P1 agent spec")
	p2Spec := flag.String("p2", "minmax:4", "P2 agent spec")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base seed for random agents")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var p1Wins, p2Wins, draws atomic.Int64
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		g.Go(func() error {
			id := uuid.New()
			p1, err := parseAgentSpec(*p1Spec, *rows, *cols, gameSeed)
			if err != nil {
				return err
			}
			p2, err := parseAgentSpec(*p2Spec, *rows, *cols, gameSeed+1)
			if err != nil {
				return err
			}
			res := cli.NewGame(*rows, *cols, p1, p2, io.Discard).Run()
			switch res {
			case game.OutcomeWinP1:
				p1Wins.Add(1)
			case game.OutcomeWinP2:
				p2Wins.Add(1)
			default:
				draws.Add(1)
			}
			log.Info().
				Stringer("game", id).
				Stringer("result", res).
				Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("arena aborted")
	}

	log.Info().
		Str("p1", *p1Spec).
		Str("p2", *p2Spec).
		Int64("p1_wins", p1Wins.Load()).
		Int64("p2_wins", p2Wins.Load()).
		Int64("draws", draws.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("arena done")
}
