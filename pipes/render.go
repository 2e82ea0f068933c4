package pipes

import "strings"

// RenderGrid draws an n x n board as a grid of Unicode
// box-drawing glyphs, one row per grid row.  A nil or
// unassigned-shaped cell renders as '?'.
func RenderGrid(n int, board []Pipe) string {
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			b.WriteRune(board[row*n+col].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderString renders a canonical solution string directly,
// decoding it first.  It returns an error if the string isn't a
// valid encoding.
func RenderString(s string) (string, error) {
	board, n, err := Decode(s)
	if err != nil {
		return "", err
	}
	return RenderGrid(n, board), nil
}
