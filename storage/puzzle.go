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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/dcbrotsky/pipes.go/pipes"
)

/*

stored puzzles

A puzzleEntry is the persisted form of one generated board: its
canonical solution string, the board's side length, and when it was
generated.  It is JSON serializable so it can go into the cache as
well as the database.

*/

type puzzleEntry struct {
	PuzzleId string // canonical encoding of the board, also its cache/database key
	N        int32
	Solution string
	Created  time.Time
}

// SavePuzzle persists a freshly generated board and returns its
// puzzle ID (the board's own canonical encoding).  Inserting the
// same board twice is a no-op: the ID is derived from the solution,
// so re-saving the same board just re-primes the cache.
func SavePuzzle(ctx context.Context, n int, solution string) (string, error) {
	if err := validateBoard(n, solution); err != nil {
		return "", fmt.Errorf("Refusing to save an invalid board: %v", err)
	}
	pe := &puzzleEntry{PuzzleId: solution, N: int32(n), Solution: solution, Created: time.Now()}
	if pe.cacheLoad() {
		return pe.PuzzleId, nil
	}
	if err := pe.databaseLoad(ctx); err == nil {
		pe.cacheInsert()
		return pe.PuzzleId, nil
	}
	if err := pe.databaseInsert(ctx); err != nil {
		return "", err
	}
	pe.cacheInsert()
	return pe.PuzzleId, nil
}

// LoadPuzzle looks up a previously saved board by its puzzle ID,
// checking the cache before the database.  Returns an error if no
// such puzzle was ever saved.
func LoadPuzzle(ctx context.Context, id string) (n int, solution string, err error) {
	pe := &puzzleEntry{PuzzleId: id}
	if pe.cacheLoad() {
		return int(pe.N), pe.Solution, nil
	}
	if err = pe.databaseLoad(ctx); err != nil {
		return 0, "", err
	}
	pe.cacheInsert()
	return int(pe.N), pe.Solution, nil
}

// key: compute the cache key for a puzzleEntry.
func (pe *puzzleEntry) key() string {
	return "PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzleEntry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *puzzleEntry
	if err := json.Unmarshal(bytes, &spe); err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzleEntry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached puzzleEntry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Returns
// an error if there is no saved entry with the given id.
func (pe *puzzleEntry) databaseLoad(ctx context.Context) error {
	var loadErr error
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT n, solution, created FROM puzzles WHERE puzzleid = $1", pe.PuzzleId)
		if err := row.Scan(&pe.N, &pe.Solution, &pe.Created); err != nil {
			loadErr = fmt.Errorf("No stored puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return loadErr
}

// cacheInsert: insert a puzzle entry into the cache. Replaces
// any existing entry with the same id.
func (pe *puzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzleEntry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new puzzle entry into the database.
func (pe *puzzleEntry) databaseInsert(ctx context.Context) error {
	var insertErr error
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleid, n, solution, created) VALUES ($1, $2, $3, $4)",
			pe.PuzzleId, pe.N, pe.Solution, pe.Created)
		if err != nil {
			insertErr = fmt.Errorf("Database error saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return insertErr
}

// validateBoard is a guard against persisting garbage: every
// puzzleEntry's solution must actually decode.
func validateBoard(n int, solution string) error {
	board, decodedN, err := pipes.Decode(solution)
	if err != nil {
		return err
	}
	if decodedN != n {
		return fmt.Errorf("solution encodes a %dx%d board, not %dx%d", decodedN, decodedN, n, n)
	}
	if !pipes.Solved(n, board) {
		return fmt.Errorf("solution is not actually solved")
	}
	return nil
}
