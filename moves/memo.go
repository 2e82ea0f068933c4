package moves

import "github.com/dcbrotsky/pipes.go/pipes"

// Fingerprint returns the canonical encoding of board, used as the
// memo key. Two boards with the same fingerprint are the same board.
func Fingerprint(board []pipes.Pipe) string {
	return pipes.Encode(board)
}

// memo tracks, per board fingerprint, which oracle-ranked candidate
// indices have already been tried and should not be offered again.
type memo struct {
	tried map[string]map[int]bool
}

func newMemo() *memo {
	return &memo{tried: make(map[string]map[int]bool)}
}

func (m *memo) has(fingerprint string, index int) bool {
	return m.tried[fingerprint][index]
}

func (m *memo) add(fingerprint string, index int) {
	set := m.tried[fingerprint]
	if set == nil {
		set = make(map[int]bool)
		m.tried[fingerprint] = set
	}
	set[index] = true
}
