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

func TestErrorUsesCustomMessageWhenSet(t *testing.T) {
	e := &Error{Message: "custom message"}
	if e.Error() != "custom message" {
		t.Errorf("Error() = %q, want %q", e.Error(), "custom message")
	}
}

func TestErrorFormatsWithoutCustomMessage(t *testing.T) {
	e := &Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Condition: TooSmallCondition,
		Attribute: SizeAttribute,
		Values:    ErrorData{5, 2},
	}
	got := e.Error()
	if got == "" {
		t.Fatalf("Error() returned an empty string")
	}
	if got == "custom message" {
		t.Fatalf("Error() unexpectedly matched a message it was never given")
	}
}
