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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Board Generation

*/

// GenerateRequest is the body of a POST to GenerateHandler.
type GenerateRequest struct {
	N int `json:"n"`
}

// State is the wire form of a board: its size, the canonical
// encoding string, and whether it's currently solved.
type State struct {
	N      int    `json:"n"`
	Board  string `json:"board"`
	Solved bool   `json:"solved"`
}

// GenerateHandler is a POST handler that reads a GenerateRequest
// from the body, generates a fresh solved board of that size, and
// sends its State as a 200 response.  The generated board and the
// error (if any) are both returned to the golang caller.
//
// If we can't decode the request, we send a 400 response and
// return the error to the caller.
func GenerateHandler(w http.ResponseWriter, r *http.Request) (*State, error) {
	dec := json.NewDecoder(r.Body)
	var req GenerateRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	solutions, e := Generate(r.Context(), req.N, SolveOptions{})
	if e != nil {
		err, ok := e.(*Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"GenerateHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	state := &State{N: req.N, Board: solutions[0], Solved: true}
	return state, writeJSON(state, http.StatusOK, w, r)
}

/*

Board Rotation

*/

// RotateRequest is the body of a POST to RotateHandler: the
// current board and the cell to rotate.
type RotateRequest struct {
	Board string `json:"board"`
	Index int    `json:"index"`
}

// RotateHandler is a POST handler that reads a RotateRequest from
// the body, rotates the named cell 90 degrees clockwise, and sends
// the resulting State as a 200 response.
//
// If we can't decode the posted request, or the posted board
// doesn't decode, or the index is out of range, we send a 400
// response and return the error to the caller.
func RotateHandler(w http.ResponseWriter, r *http.Request) (*State, error) {
	dec := json.NewDecoder(r.Body)
	var req RotateRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	board, n, e := Decode(req.Board)
	if e != nil {
		err, ok := e.(*Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"RotateHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	if req.Index < 0 || req.Index >= len(board) {
		err := &Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: LocationAttribute,
			Condition: InvalidBoardCondition,
			Values:    ErrorData{req.Index},
			Message:   fmt.Sprintf("cell index %d is out of range for a %dx%d board", req.Index, n, n),
		}
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	board[req.Index] = board[req.Index].Rotate()
	state := &State{N: n, Board: Encode(board), Solved: Solved(n, board)}
	return state, writeJSON(state, http.StatusOK, w, r)
}

/*

Board Query

*/

// SolvedRequest is the body of a POST to SolvedHandler.
type SolvedRequest struct {
	Board string `json:"board"`
}

// SolvedHandler is a POST handler that reads a SolvedRequest from
// the body and reports whether that board is solved.
func SolvedHandler(w http.ResponseWriter, r *http.Request) (*State, error) {
	dec := json.NewDecoder(r.Body)
	var req SolvedRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	board, n, e := Decode(req.Board)
	if e != nil {
		err, ok := e.(*Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"SolvedHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	state := &State{N: n, Board: req.Board, Solved: Solved(n, board)}
	return state, writeJSON(state, http.StatusOK, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort of
// like http.Error, but it sends the JSON form of an appropriate
// Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err *Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = &Error{
			Scope:     ArgumentScope,
			Structure: AttributeStructure,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = &Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = &Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = &Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it creates an Error object describing the failure,
// encodes that Error as a 500-series response to the client, and
// returns that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON returns
// that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON
// returns nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(*Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope {
			// We just failed to encode an Encoding error.  This
			// should never happen.  Pseudo-encode it by hand.
			status = http.StatusInternalServerError
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
