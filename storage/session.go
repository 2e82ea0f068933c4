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
	"encoding/json"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"
)

// A Session tracks one player's progress solving one board: which
// puzzle it started from, the board as it stands at the current
// step, and which move-picker candidates have already been tried at
// each board fingerprint the player has passed through.  Every prior
// step's board is kept in a cache-resident list so the player can
// undo back to it.
type Session struct {
	SID      string // session ID
	PuzzleId string // canonical encoding of the starting board
	Step     int    // current step
	Created  string // RFC3339 time when the session was created
	Saved    string // RFC3339 time when the session was last saved

	Board string          `redis:"-"` // board at the current step
	Memo  map[string][]int `redis:"-"` // tried move-picker candidates, by board fingerprint
}

/*

session manipulation

*/

// StartPuzzle resets the session to begin solving the board with
// the given puzzle ID and starting encoding.  Clears any prior
// steps and tried-move memo.
func (session *Session) StartPuzzle(puzzleId, board string) {
	session.PuzzleId = puzzleId
	session.Board = board
	session.Memo = make(map[string][]int)
	session.Step = 1
	session.Created = time.Now().Format(time.RFC3339)
	session.Saved = session.Created

	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("DEL", session.stepsKey())
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of session %q after reset: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Reset session %v to start solving puzzle %q.", session.SID, session.PuzzleId)
}

// AddStep records board as the session's new current step.
func (session *Session) AddStep(board string) {
	session.Board = board
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of %s:%q step %d: %v", session.SID, session.PuzzleId, session.Step, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Added session %v:%v step %d.", session.SID, session.PuzzleId, session.Step)
}

// RemoveStep drops the current step and restores the board as it
// stood at the prior step.
func (session *Session) RemoveStep() {
	if session.Step <= 1 {
		return
	}

	var bytes []byte
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step--
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("LTRIM", session.stepsKey(), 0, -2)
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Printf("Error on remove to %s:%q step %d: %v",
				session.SID, session.PuzzleId, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
	log.Printf("Reverted session %v:%v to step %d.", session.SID, session.PuzzleId, session.Step)
}

// Lookup loads a previously saved session by SID. Returns whether
// a session was found.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.Printf("Redis error on parse of saved session %q: %v", session.SID, err)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.Printf("Redis error on GET of session %q: %v", session.SID, err)
			return err
		}
		log.Printf("No redis saved session %q", session.SID)
		return nil
	}
	rdExecute(body)
	if found {
		session.LoadStep()
	}
	return
}

// LoadStep loads the board and memo for the session's current step.
func (session *Session) LoadStep() {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Printf("Error on load of %s:%q step %d: %v", session.SID, session.PuzzleId, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
}

// RecordTried marks index as tried at board fingerprint, persisting
// the updated memo to the current step.
func (session *Session) RecordTried(fingerprint string, index int) {
	if session.Memo == nil {
		session.Memo = make(map[string][]int)
	}
	for _, i := range session.Memo[fingerprint] {
		if i == index {
			return
		}
	}
	session.Memo[fingerprint] = append(session.Memo[fingerprint], index)
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("LSET", session.stepsKey(), -1, bytes)
		if err != nil {
			log.Printf("Cache failure updating memo for %s:%q step %d: %v",
				session.SID, session.PuzzleId, session.Step, err)
		}
		return
	}
	rdExecute(body)
}

// Tried reports the move-picker candidates already tried at fingerprint.
func (session *Session) Tried(fingerprint string) []int {
	return session.Memo[fingerprint]
}

/*

serialization of step state into and out of the cache

*/

type stepState struct {
	Board string
	Memo  map[string][]int
}

// marshalStep - get JSON for the current step
func (session *Session) marshalStep() []byte {
	bytes, err := json.Marshal(stepState{Board: session.Board, Memo: session.Memo})
	if err != nil {
		log.Printf("Failed to marshal step state of %s:%q step %d: %v",
			session.SID, session.PuzzleId, session.Step, err)
		panic(err)
	}
	return bytes
}

// unmarshalStep - recover the board and memo for the saved step
func (session *Session) unmarshalStep(bytes []byte) {
	var state stepState
	if err := json.Unmarshal(bytes, &state); err != nil {
		log.Printf("Failed to unmarshal saved JSON of %s:%q step %d: %v",
			session.SID, session.PuzzleId, session.Step, err)
		panic(err)
	}
	session.Board = state.Board
	session.Memo = state.Memo
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return "SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":Steps"
}
