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
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dcbrotsky/pipes.go/pipes"
)

/*

entries

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/pipes?sslmode=disable"
	}

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(ctx, tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

seed a handful of pre-generated solved boards

*/

const SampleSessionName = "pipes sample catalog - not a user session"

// sampleSizes names the board sizes the sample catalog covers, and
// how many distinct solved boards to generate at each size. Unlike
// the teacher's hand-typed Sudoku grids, a pipe solution can't be
// eyeballed for correctness, so the catalog is produced by the
// solver itself, deterministically seeded for reproducibility.
var sampleSizes = []struct {
	n     int
	count int
}{
	{2, 2},
	{3, 3},
	{4, 3},
	{5, 2},
}

type sampleEntry struct {
	id       string
	n        int
	solution string
}

var (
	samples     []sampleEntry
	sampleNames []string
)

func init() {
	rng := rand.New(rand.NewSource(20160101))
	for _, spec := range sampleSizes {
		seen := make(map[string]bool)
		for len(seen) < spec.count {
			solutions, err := pipes.Generate(context.Background(), spec.n, pipes.SolveOptions{
				MaxSolutions: 1,
				Randomize:    true,
				Rand:         rng,
			})
			if err != nil || len(solutions) == 0 {
				panic(fmt.Errorf("Can't happen! Failed to generate a sample %dx%d board: %v", spec.n, spec.n, err))
			}
			sol := solutions[0]
			if seen[sol] {
				continue
			}
			seen[sol] = true
			samples = append(samples, sampleEntry{id: pipes.Encode(mustDecode(sol)), n: spec.n, solution: sol})
		}
	}
	sampleNames = make([]string, len(samples))
	for i := range samples {
		sampleNames[i] = fmt.Sprintf("sample-%d", i+1)
	}
}

func mustDecode(s string) []pipes.Pipe {
	board, _, err := pipes.Decode(s)
	if err != nil {
		panic(fmt.Errorf("Can't happen! Generator produced a bad encoding: %v", err))
	}
	return board
}

// Create and insert the sample puzzles and sample session
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	// idempotency: if the sample session already exists, we are done
	var count int64
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM sessions "+
		"WHERE sid = $1", SampleSessionName)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Database error looking for session %q: %v", SampleSessionName, err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	for _, sample := range samples {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleid, n, solution, created) "+
				"VALUES ($1, $2, $3, $4)",
			sample.id, sample.n, sample.solution, now)
		if err != nil {
			return fmt.Errorf("Database error saving sample puzzle %q: %v", sample.id, err)
		}
	}

	_, err := tx.Exec(ctx,
		"INSERT INTO sessions (sid, puzzleid, board, moves, step, created, saved) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
		SampleSessionName, samples[0].id, samples[0].solution, "[]", 1, now, now)
	if err != nil {
		return fmt.Errorf("Database error saving sample session: %v", err)
	}

	return nil
}

// Delete the common puzzles
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, "DELETE FROM sessions WHERE sid = $1", SampleSessionName); err != nil {
		return fmt.Errorf("Database error deleting sample session: %v", err)
	}
	for _, sample := range samples {
		if _, err := tx.Exec(ctx, "DELETE FROM puzzles WHERE puzzleid = $1", sample.id); err != nil {
			return fmt.Errorf("Database error deleting sample puzzle %q: %v", sample.id, err)
		}
	}
	return nil
}
