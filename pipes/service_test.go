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

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateHandler(t *testing.T) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		state, err := GenerateHandler(w, r)
		if err != nil {
			t.Fatalf("GenerateHandler failed: %v", err)
		}
		if state.N != 3 || !state.Solved {
			t.Errorf("Generated state %+v, expected n=3 and Solved", state)
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, err := json.Marshal(GenerateRequest{N: 3})
	if err != nil {
		t.Fatalf("Failed to encode request: %v", err)
	}
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusOK)
	}
	b, e := ioutil.ReadAll(r.Body)
	r.Body.Close()
	if e != nil {
		t.Fatalf("Read error on body: %v", e)
	}
	var state State
	if e := json.Unmarshal(b, &state); e != nil {
		t.Fatalf("Unmarshal failed: %v", e)
	}
	if state.N != 3 || !state.Solved {
		t.Errorf("Response state %+v, expected n=3 and Solved", state)
	}
	if _, _, e := Decode(state.Board); e != nil {
		t.Errorf("Response board %q doesn't decode: %v", state.Board, e)
	}
}

func TestGenerateHandlerBadSize(t *testing.T) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		if _, err := GenerateHandler(w, r); err == nil {
			t.Errorf("GenerateHandler should have failed for n=1")
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, _ := json.Marshal(GenerateRequest{N: 1})
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusBadRequest)
	}
	r.Body.Close()
}

func TestGenerateHandlerBadRequest(t *testing.T) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		if _, err := GenerateHandler(w, r); err == nil {
			t.Errorf("GenerateHandler should have failed to decode")
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	r, e := http.Post(ts.URL, "application/json", strings.NewReader("not json"))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusBadRequest)
	}
	r.Body.Close()
}

func TestRotateHandler(t *testing.T) {
	solutions, err := Generate(context.Background(), 3, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	board, n, err := Decode(solutions[0])
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := board[0].Rotate()

	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		state, err := RotateHandler(w, r)
		if err != nil {
			t.Fatalf("RotateHandler failed: %v", err)
		}
		gotBoard, _, err := Decode(state.Board)
		if err != nil {
			t.Fatalf("Decode of response board failed: %v", err)
		}
		if gotBoard[0] != want {
			t.Errorf("Rotated cell 0 is %v, expected %v", gotBoard[0], want)
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, err := json.Marshal(RotateRequest{Board: Encode(board), Index: 0})
	if err != nil {
		t.Fatalf("Failed to encode request: %v", err)
	}
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusOK)
	}
	b, e := ioutil.ReadAll(r.Body)
	r.Body.Close()
	if e != nil {
		t.Fatalf("Read error on body: %v", e)
	}
	var state State
	if e := json.Unmarshal(b, &state); e != nil {
		t.Fatalf("Unmarshal failed: %v", e)
	}
	if state.N != n {
		t.Errorf("Response n = %d, expected %d", state.N, n)
	}
}

func TestRotateHandlerBadIndex(t *testing.T) {
	solutions, err := Generate(context.Background(), 2, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		if _, err := RotateHandler(w, r); err == nil {
			t.Errorf("RotateHandler should have failed for an out-of-range index")
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, _ := json.Marshal(RotateRequest{Board: solutions[0], Index: 99})
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusBadRequest)
	}
	r.Body.Close()
}

func TestRotateHandlerBadBoard(t *testing.T) {
	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		if _, err := RotateHandler(w, r); err == nil {
			t.Errorf("RotateHandler should have failed to decode the board")
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, _ := json.Marshal(RotateRequest{Board: "not a board", Index: 0})
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusBadRequest)
	}
	r.Body.Close()
}

func TestSolvedHandler(t *testing.T) {
	solutions, err := Generate(context.Background(), 3, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		state, err := SolvedHandler(w, r)
		if err != nil {
			t.Fatalf("SolvedHandler failed: %v", err)
		}
		if !state.Solved {
			t.Errorf("Solved state %+v, expected Solved", state)
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, err := json.Marshal(SolvedRequest{Board: solutions[0]})
	if err != nil {
		t.Fatalf("Failed to encode request: %v", err)
	}
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Status was %v, expected %v", r.StatusCode, http.StatusOK)
	}
	r.Body.Close()
}

func TestSolvedHandlerUnsolved(t *testing.T) {
	solutions, err := Generate(context.Background(), 3, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	board, _, err := Decode(solutions[0])
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	board[0] = board[0].Rotate()
	unsolved := Encode(board)

	handlerFunc := func(w http.ResponseWriter, r *http.Request) {
		state, err := SolvedHandler(w, r)
		if err != nil {
			t.Fatalf("SolvedHandler failed: %v", err)
		}
		if state.Solved {
			t.Errorf("State %+v reported Solved after a rotation broke the board", state)
		}
	}
	ts := httptest.NewServer(http.HandlerFunc(handlerFunc))
	defer ts.Close()

	body, _ := json.Marshal(SolvedRequest{Board: unsolved})
	r, e := http.Post(ts.URL, "application/json", strings.NewReader(string(body)))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	r.Body.Close()
}
