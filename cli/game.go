package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/halvorlinder/Connect-4-AI/agent"
	"github.com/halvorlinder/Connect-4-AI/game"
)

// Game drives a single match between two agents, rendering each position
// to out before asking the side to move for its next move.
type Game struct {
	state game.State
	p1    agent.Agent
	p2    agent.Agent
	out   io.Writer
}

func NewGame(rows, cols int, p1, p2 agent.Agent, out io.Writer) *Game {
	return &Game{
		state: game.NewState(rows, cols),
		p1:    p1,
		p2:    p2,
		out:   out,
	}
}

// Run plays the match to completion and returns the final outcome. An
// agent that produces an illegal move is asked again; a stubborn agent
// forfeits.
func (g *Game) Run() game.Outcome {
	for {
		fmt.Fprint(g.out, RenderBoard(g.state.Board))
		mover := g.p1
		if g.state.Turn == game.P2 {
			mover = g.p2
		}
		next, ok := g.step(mover)
		if !ok {
			return game.WinOutcome(g.state.Turn.Other())
		}
		g.state = next
		if res := game.Result(g.state); res != game.OutcomeNone {
			fmt.Fprint(g.out, RenderBoard(g.state.Board))
			fmt.Fprintf(g.out, "The game ended with the following result: %s\n", OutcomeText(res))
			return res
		}
	}
}

const illegalMoveRetries = 3

func (g *Game) step(mover agent.Agent) (game.State, bool) {
	for attempt := 0; attempt <= illegalMoveRetries; attempt++ {
		mv := mover.NextMove(g.state)
		next, err := game.Play(g.state, mv)
		if err != nil {
			log.Warn().
				Err(err).
				Int("row", mv.Row).
				Int("col", mv.Col).
				Stringer("turn", g.state.Turn).
				Msg("agent produced illegal move")
			continue
		}
		return next, true
	}
	return game.State{}, false
}

// SelectAgent interactively configures an agent for the given player:
// an agent type from a numbered menu, then the type's own settings.
func SelectAgent(p *Prompter, player game.Player, rows, cols int) (agent.Agent, error) {
	p.Say("Please select agent type for %s", PlayerName(player))
	p.Say("0: Human")
	p.Say("1: Random")
	p.Say("2: MinMax")
	choice, err := p.IntInRange(0, 3)
	if err != nil {
		return nil, err
	}
	switch choice {
	case 0:
		return agent.NewHuman(humanPicker(p)), nil
	case 1:
		return agent.NewRandom(time.Now().UnixNano()), nil
	default:
		return selectMinMax(p, rows, cols)
	}
}

func selectMinMax(p *Prompter, rows, cols int) (agent.Agent, error) {
	cfg := agent.MinMaxConfig{Rows: rows, Cols: cols}
	p.Say("Should the agent use a timer? (Y/N)")
	timed, err := p.YesNo()
	if err != nil {
		return nil, err
	}
	cfg.Timed = timed
	if timed {
		p.Say("Maximum number of seconds for a move [%d,%d]:", agent.MinTimeSeconds, agent.MaxTimeSeconds)
		cfg.TimeSeconds, err = p.IntInRange(agent.MinTimeSeconds, agent.MaxTimeSeconds+1)
	} else {
		p.Say("Maximum search depth [%d,%d]:", agent.MinDepth, agent.MaxDepth)
		cfg.Depth, err = p.IntInRange(agent.MinDepth, agent.MaxDepth+1)
	}
	if err != nil {
		return nil, err
	}
	return agent.NewMinMax(cfg)
}

// humanPicker presents the legal moves and reads an index. If the input
// stream ends, the first legal move is played so the match can finish.
func humanPicker(p *Prompter) agent.MovePicker {
	return func(s game.State, moves []game.Move) int {
		cols := make([]int, len(moves))
		for i, mv := range moves {
			cols[i] = mv.Col
		}
		p.Say("Columns: %v", cols)
		p.Say("%s to move. Select a move from the list [0,%d):", PlayerName(s.Turn), len(moves))
		index, err := p.IntInRange(0, len(moves))
		if err != nil {
			log.Error().Err(err).Msg("move input unavailable, falling back to first legal move")
			return 0
		}
		return index
	}
}
