package agent

import "github.com/halvorlinder/Connect-4-AI/game"

// MovePicker is the external input collaborator: given the position and
// its legal moves it returns an index into that list.
type MovePicker func(s game.State, moves []game.Move) int

// Human satisfies the Agent contract by delegating the actual selection
// to an injected picker, typically an interactive prompt.
type Human struct {
	pick MovePicker
}

func NewHuman(pick MovePicker) *Human {
	return &Human{pick: pick}
}

func (h *Human) NextMove(s game.State) game.Move {
	moves := game.Legal(s)
	return moves[h.pick(s, moves)]
}
