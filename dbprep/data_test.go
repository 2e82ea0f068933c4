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

package dbprep

import (
	"strings"
	"testing"
)

// make sure the generated sample catalog is well-formed
func TestSampleData(t *testing.T) {
	if len(samples) == 0 {
		t.Fatalf("No sample puzzles were generated")
	}
	seenIDs := make(map[string]bool)
	for i, sample := range samples {
		if len(sample.id) != 4*sample.n*sample.n {
			t.Errorf("Sample %d (n=%d) id %q has the wrong length", i, sample.n, sample.id)
		}
		for _, c := range sample.id {
			if c != '0' && c != '1' {
				t.Errorf("Sample %d id %q has a non-binary character", i, sample.id)
			}
		}
		if seenIDs[sample.id] {
			t.Errorf("Sample %d id %q duplicates an earlier sample", i, sample.id)
		}
		seenIDs[sample.id] = true
	}
	for i, name := range sampleNames {
		if name != strings.ToLower(name) {
			t.Errorf("Name %d (%s) contains a non-lowercase letter.", i, name)
		}
	}
}
