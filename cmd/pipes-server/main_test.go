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
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/dcbrotsky/pipes.go/storage"
)

func testSetup(t *testing.T) context.Context {
	ctx := context.Background()
	if _, _, err := storage.Connect(ctx); err != nil {
		t.Fatalf("Exiting: No local storage available: %v", err)
	}
	sessionMutex.Lock()
	sessions = make(map[string]*storage.Session)
	sessionMutex.Unlock()
	return ctx
}

func TestSessionFlow(t *testing.T) {
	testSetup(t)

	srv := httptest.NewServer(http.HandlerFunc(rootHandler))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	c := &http.Client{Jar: jar}

	r, err := c.Get(srv.URL + "/new/3")
	if err != nil {
		t.Fatalf("Request error on /new/3: %v", err)
	}
	r.Body.Close()
	if r.StatusCode != http.StatusOK {
		t.Errorf("Expected /new/3 to land on the solver page with status 200, got %v", r.StatusCode)
	}

	r, err = c.Get(srv.URL + "/api/")
	if err != nil {
		t.Fatalf("Request error on GET /api/: %v", err)
	}
	body, err := ioutil.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		t.Fatalf("Read error on /api/ response: %v", err)
	}
	var state pipes.State
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if state.N != 3 {
		t.Errorf("Expected a 3x3 board, got n=%d", state.N)
	}

	board, _, err := pipes.Decode(state.Board)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	rotateBody, err := json.Marshal(rotateRequest{Index: 0})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	r, err = c.Post(srv.URL+"/api/", "application/json", bytes.NewReader(rotateBody))
	if err != nil {
		t.Fatalf("Request error on POST /api/: %v", err)
	}
	body, err = ioutil.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		t.Fatalf("Read error on rotate response: %v", err)
	}
	var rotated pipes.State
	if err := json.Unmarshal(body, &rotated); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	rotatedBoard, _, err := pipes.Decode(rotated.Board)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if rotatedBoard[0] != board[0].Rotate() {
		t.Errorf("Rotate didn't turn cell 0 as expected")
	}

	r, err = c.Get(srv.URL + "/api/back/")
	if err != nil {
		t.Fatalf("Request error on /api/back/: %v", err)
	}
	body, err = ioutil.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		t.Fatalf("Read error on back response: %v", err)
	}
	var reverted pipes.State
	if err := json.Unmarshal(body, &reverted); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if reverted.Board != state.Board {
		t.Errorf("Expected /api/back/ to restore the original board")
	}
}

func TestHeroku(t *testing.T) {
	testSetup(t)

	srv := httptest.NewServer(http.HandlerFunc(rootHandler))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	c := &http.Client{Jar: jar}

	for _, proto := range []string{"http", "https"} {
		req, err := http.NewRequest("GET", srv.URL+"/solver/", nil)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Add("X-Forwarded-Proto", proto)
		r, err := c.Do(req)
		if err != nil {
			t.Fatalf("Request error: %v", err)
		}
		r.Body.Close()
		if h := r.Header.Get("Set-Cookie"); h == "" {
			t.Errorf("Expected a Set-Cookie on first %s request", proto)
		}
	}
}
