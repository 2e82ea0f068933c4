// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package pipes

import "testing"

func TestNeighborBoundaries(t *testing.T) {
	g := Grid{N: 3}
	// corner 0 (row 0, col 0): no Up, no Left
	if g.Neighbor(0, Up) != -1 {
		t.Errorf("Neighbor(0, Up) = %d, want -1", g.Neighbor(0, Up))
	}
	if g.Neighbor(0, Left) != -1 {
		t.Errorf("Neighbor(0, Left) = %d, want -1", g.Neighbor(0, Left))
	}
	if got := g.Neighbor(0, Right); got != 1 {
		t.Errorf("Neighbor(0, Right) = %d, want 1", got)
	}
	if got := g.Neighbor(0, Down); got != 3 {
		t.Errorf("Neighbor(0, Down) = %d, want 3", got)
	}
	// no modular wraparound: right edge cell has no Right neighbor
	if g.Neighbor(2, Right) != -1 {
		t.Errorf("Neighbor(2, Right) = %d, want -1 (no wraparound)", g.Neighbor(2, Right))
	}
}

func TestRowColIndexRoundTrip(t *testing.T) {
	g := Grid{N: 4}
	for idx := 0; idx < g.Size(); idx++ {
		row, col := g.Row(idx), g.Col(idx)
		if got := g.Index(row, col); got != idx {
			t.Errorf("Index(Row(%d), Col(%d)) = %d, want %d", idx, idx, got, idx)
		}
	}
}

func TestConnectionsRequireBothSidesOpen(t *testing.T) {
	g := Grid{N: 2}
	board := make([]Pipe, 4)
	board[0] = Pipe{false, true, true, false}  // Right, Down
	board[1] = Pipe{false, false, true, true}  // Down, Left
	board[2] = Pipe{true, true, false, false}  // Up, Right
	board[3] = Pipe{true, false, false, true}  // Up, Left

	conn := g.Connections(0, board)
	if !conn[Right] {
		t.Errorf("expected cell 0 to connect Right to cell 1")
	}
	if !conn[Down] {
		t.Errorf("expected cell 0 to connect Down to cell 2")
	}
	if conn[Up] || conn[Left] {
		t.Errorf("cell 0 has no Up/Left neighbor; Connections should report false")
	}
}

func TestConnectionsRejectHalfConnection(t *testing.T) {
	g := Grid{N: 2}
	board := make([]Pipe, 4)
	board[0] = Pipe{false, true, false, false} // Right open
	board[1] = Pipe{false, false, false, false}
	board[2] = Pipe{}
	board[3] = Pipe{}
	conn := g.Connections(0, board)
	if conn[Right] {
		t.Errorf("one-sided opening should not count as a connection")
	}
}
