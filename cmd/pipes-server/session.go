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
	"log"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/dcbrotsky/pipes.go/storage"
)

var (
	startTime    = time.Now()
	sessions     = make(map[string]*storage.Session)
	sessionMutex sync.RWMutex
	scrambleRng  = rand.New(rand.NewSource(time.Now().UnixNano()))
	scrambleMu   sync.Mutex
)

// getCookie gets the session cookie, or sets a new one, and returns
// the session ID associated with it.
//
// A server instance serving both Heroku's HTTP and HTTPS traffic can
// be handed a cookie minted by the other protocol, so the session ID
// is stamped with the protocol it was created under and checked
// against the protocol of the request presenting it.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	proto := "httpx"
	if herokuProtocol := r.Header.Get("X-Forwarded-Proto"); herokuProtocol != "" {
		proto = herokuProtocol
	}

	if sc, e := r.Cookie(cookieName); e == nil {
		if m, e := regexp.MatchString(proto+"-[0-9a-z]{3,}", sc.Value); e == nil && m {
			return sc.Value
		}
	}

	sid := proto + "-" + strconv.FormatInt(int64(time.Now().Sub(startTime)), 36)
	sc := &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath}
	http.SetCookie(w, sc)
	return sid
}

// sessionSelect finds or creates the storage-backed session for the
// request's cookie. A session already resident in memory is used
// as-is; otherwise the cache/database is consulted, and only if
// that also comes up empty is a fresh puzzle started.
func sessionSelect(ctx context.Context, w http.ResponseWriter, r *http.Request) *storage.Session {
	sessionID := getCookie(w, r)

	sessionMutex.RLock()
	session, ok := sessions[sessionID]
	sessionMutex.RUnlock()
	if ok {
		return session
	}

	session = &storage.Session{SID: sessionID}
	if !session.Lookup() {
		if err := newPuzzle(ctx, session, defaultSize); err != nil {
			log.Printf("Couldn't start a puzzle for session %q: %v", sessionID, err)
		}
	}

	sessionMutex.Lock()
	sessions[sessionID] = session
	sessionMutex.Unlock()
	return session
}

// newPuzzle generates and persists a fresh solved board of size n
// and starts session solving it, scrambled so there's something to
// do.
func newPuzzle(ctx context.Context, session *storage.Session, n int) error {
	solutions, err := pipes.Generate(ctx, n, pipes.SolveOptions{MaxSolutions: 1, Randomize: true})
	if err != nil {
		return err
	}
	puzzleId, err := storage.SavePuzzle(ctx, n, solutions[0])
	if err != nil {
		return err
	}
	board, _, err := pipes.Decode(solutions[0])
	if err != nil {
		return err
	}
	scrambled := scrambleBoard(board)
	session.StartPuzzle(puzzleId, pipes.Encode(scrambled))
	return nil
}

// scrambleBoard rotates every cell a random number of quarter
// turns, so a freshly generated board isn't handed to the player
// already solved.
func scrambleBoard(board []pipes.Pipe) []pipes.Pipe {
	out := make([]pipes.Pipe, len(board))
	copy(out, board)
	scrambleMu.Lock()
	defer scrambleMu.Unlock()
	for i, p := range out {
		turns := scrambleRng.Intn(4)
		for t := 0; t < turns; t++ {
			p = p.Rotate()
		}
		out[i] = p
	}
	return out
}
