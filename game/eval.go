package game

import "math"

// winLen is the number of aligned discs that wins the game.
const winLen = 4

// axisDirs is the positive direction of each axis: horizontal, vertical,
// diagonal and anti-diagonal.
var axisDirs = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Eval is the full-board static evaluation and the ground truth the
// incremental evaluator must reproduce exactly. A decided win is +Inf for
// P1 and -Inf for P2, a drawn board is 0, and otherwise the value is the
// difference between the players' counts of still-completable windows.
func Eval(s State) float64 {
	if windowCount(s.Board, P1, false) > 0 {
		return math.Inf(1)
	}
	if windowCount(s.Board, P2, false) > 0 {
		return math.Inf(-1)
	}
	if s.Board.Full() {
		return 0.0
	}
	return float64(windowCount(s.Board, P1, true) - windowCount(s.Board, P2, true))
}

// windowCount counts winLen-length windows along all four axes whose cells
// all belong to player. With allowEmpty it counts open lines (cells belong
// to player or are empty); without it, realized wins.
func windowCount(b Board, player Player, allowEmpty bool) int {
	target := CellFromPlayer(player)
	count := 0
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			for _, dir := range axisDirs {
				endRow := row + (winLen-1)*dir[0]
				endCol := col + (winLen-1)*dir[1]
				if !b.InBounds(endRow, endCol) {
					continue
				}
				ok := true
				for i := 0; i < winLen; i++ {
					cell := b.At(row+i*dir[0], col+i*dir[1])
					if cell == target || (allowEmpty && cell == CellEmpty) {
						continue
					}
					ok = false
					break
				}
				if ok {
					count++
				}
			}
		}
	}
	return count
}
