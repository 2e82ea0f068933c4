package pipes

// Solved reports whether a fully-populated n x n board satisfies
// all four constraints at once: every pipe has a legal shape, no
// half-connections, no cycles, and full connectivity.  It is the
// predicate the move-picker uses to decide when to stop.
func Solved(n int, board []Pipe) bool {
	if len(board) != n*n {
		return false
	}
	g := Grid{N: n}
	for i, p := range board {
		if !p.Valid() {
			return false
		}
		for d := Up; d <= Left; d++ {
			if p.Open(d) && g.OnBoundary(i, d) {
				return false
			}
		}
		if right := g.Neighbor(i, Right); right >= 0 {
			if p.Open(Right) != board[right].Open(Left) {
				return false
			}
		}
		if down := g.Neighbor(i, Down); down >= 0 {
			if p.Open(Down) != board[down].Open(Up) {
				return false
			}
		}
	}
	if hasCycle(g, board, 0, make([]bool, n*n), -1) {
		return false
	}
	return isConnected(g, board)
}
