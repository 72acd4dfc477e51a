// Package cli holds the interactive front end: board rendering, input
// prompts and the turn loop that drives two agents against each other.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/halvorlinder/Connect-4-AI/game"
)

var (
	p1Color      = color.New(color.FgRed)
	p2Color      = color.New(color.FgYellow)
	neutralColor = color.New(color.FgBlue)
)

// RenderBoard draws the position top row first inside a dashed frame.
// Discs render as colored "O"s, empty cells as dots.
func RenderBoard(b game.Board) string {
	var sb strings.Builder
	bar := "+" + strings.Repeat("-", b.Cols()) + "+\n"
	sb.WriteString(bar)
	for row := b.Rows() - 1; row >= 0; row-- {
		sb.WriteString("|")
		for col := 0; col < b.Cols(); col++ {
			switch b.At(row, col) {
			case game.CellP1:
				sb.WriteString(p1Color.Sprint("O"))
			case game.CellP2:
				sb.WriteString(p2Color.Sprint("O"))
			default:
				sb.WriteString(neutralColor.Sprint("."))
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(bar)
	return sb.String()
}

// PlayerName renders a player in that player's disc color.
func PlayerName(p game.Player) string {
	if p == game.P1 {
		return p1Color.Sprint("P1")
	}
	return p2Color.Sprint("P2")
}

// OutcomeText renders a finished game's result: the winner's colored
// name, or "Draw".
func OutcomeText(o game.Outcome) string {
	if winner, ok := o.Winner(); ok {
		return PlayerName(winner)
	}
	return neutralColor.Sprint("Draw")
}
