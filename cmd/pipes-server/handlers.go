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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dcbrotsky/pipes.go/client"
	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/dcbrotsky/pipes.go/storage"
)

// rootHandler dispatches every request that isn't one of the raw
// stateless service endpoints: static resources first, then the
// cookie-scoped puzzle-playing surface.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	if client.StaticHandler(w, r) {
		return
	}

	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	ctx := r.Context()
	session := sessionSelect(ctx, w, r)

	switch {
	case strings.HasPrefix(r.URL.Path, "/new/"):
		newHandler(ctx, session, w, r)
	case strings.HasPrefix(r.URL.Path, "/api/"):
		apiHandler(ctx, session, w, r)
	case strings.HasPrefix(r.URL.Path, "/solver/"):
		solverHandler(session, w, r)
	case strings.HasPrefix(r.URL.Path, "/home/"):
		homeHandler(ctx, session, w, r)
	default:
		http.Redirect(w, r, "/solver/", http.StatusFound)
	}
}

// newHandler starts the session solving a fresh board. The size
// comes from the path suffix ("/new/7"); an empty or malformed
// suffix falls back to the default size.
func newHandler(ctx context.Context, session *storage.Session, w http.ResponseWriter, r *http.Request) {
	n := defaultSize
	if suffix := strings.TrimPrefix(r.URL.Path, "/new/"); suffix != "" {
		if v, err := strconv.Atoi(suffix); err == nil {
			n = v
		}
	}
	if err := newPuzzle(ctx, session, n); err != nil {
		writeHTML(w, client.SolverPage(session.SID, session.PuzzleId, 0, nil))
		log.Printf("Session %q couldn't start a new %dx%d puzzle: %v", session.SID, n, n, err)
		return
	}
	http.Redirect(w, r, "/solver/", http.StatusFound)
}

// solverHandler renders the current step of the session as a
// playback page.
func solverHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	board, n, err := pipes.Decode(session.Board)
	if err != nil {
		writeHTML(w, client.SolverPage(session.SID, session.PuzzleId, 0, nil))
		log.Printf("Session %q has an undecodable board %q: %v", session.SID, session.Board, err)
		return
	}
	writeHTML(w, client.SolverPage(session.SID, session.PuzzleId, n, board))
}

// homeHandler lists the known solved boards of the default size as
// playable puzzle IDs.
func homeHandler(ctx context.Context, session *storage.Session, w http.ResponseWriter, r *http.Request) {
	puzzleIDs, err := storage.LoadAssetCatalog(ctx, defaultSize)
	if err != nil {
		log.Printf("No asset catalog for size %d: %v", defaultSize, err)
		puzzleIDs = nil
	}
	writeHTML(w, client.HomePage(session.SID, session.PuzzleId, puzzleIDs))
}

// apiHandler is the session-scoped mutation surface behind the
// solver page: GET returns the current board state, POST rotates
// one cell and advances the session a step, and the "/api/back/"
// suffix reverts the last rotation.
func apiHandler(ctx context.Context, session *storage.Session, w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/back/") {
		session.RemoveStep()
	}

	switch r.Method {
	case http.MethodGet:
		writeState(w, session)
	case http.MethodPost:
		rotateHandler(session, w, r)
	default:
		http.Error(w, fmt.Sprintf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
	}
}

// rotateRequest is the body of a session-scoped rotate POST: just
// the cell index, since the board itself lives in the session.
type rotateRequest struct {
	Index int `json:"index"`
}

func rotateHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	var req rotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	board, n, err := pipes.Decode(session.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if req.Index < 0 || req.Index >= len(board) {
		http.Error(w, fmt.Sprintf("cell index %d is out of range for a %dx%d board", req.Index, n, n), http.StatusBadRequest)
		return
	}
	board[req.Index] = board[req.Index].Rotate()
	session.AddStep(pipes.Encode(board))
	writeState(w, session)
}

func writeState(w http.ResponseWriter, session *storage.Session) {
	board, n, err := pipes.Decode(session.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	state := &pipes.State{N: n, Board: session.Board, Solved: pipes.Solved(n, board)}
	bytes, err := json.Marshal(state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bytes)
}

func writeHTML(w http.ResponseWriter, body string) {
	hs := w.Header()
	hs.Add("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
