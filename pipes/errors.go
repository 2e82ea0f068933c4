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

import "fmt"

/*

Errors

*/

// An Error describes a problem with a board, a CSP, or a
// requested operation.  It can produce an error message in
// English, but its main function is to classify the failure: it
// tells the caller "this thing failed to meet this condition",
// with supplemental detail about the thing and the condition, so
// that callers can react programmatically instead of matching on
// message text.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// An ErrorScope explains what part of the system the error
// refers to: a caller-supplied argument, the domain/search
// machinery, the move-picker, or an internal logic error.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	DomainScope
	SearchScope
	MoveScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions. These map onto the
// taxonomy of invariant violation, unsatisfiable node, no
// solution, invalid board, and oracle failure.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	NotInDomainCondition
	MissingAssignmentCondition
	UnassignedScopeCondition
	NoSolutionCondition
	InvalidBoardCondition
	TooSmallCondition
	TooLargeCondition
	OracleUnavailableCondition
	OracleShapeCondition
	MoveExhaustedCondition
	StaleRevisionCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	LocationAttribute
	ValueAttribute
	SizeAttribute
	EncodingAttribute
	FingerprintAttribute
	ScoreVectorAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate, and about the predicate itself.  Every
// entry must be JSON-serializable so the error can cross a
// service boundary.
type ErrorData []interface{}

// Error renders an Error as an English message.  If a custom
// Message was set, that's used verbatim; otherwise one is built
// from the structured fields.
func (e *Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case DomainScope:
		es = "Domain error: "
	case SearchScope:
		es = "Search error: "
	case MoveScope:
		es = "Move-picker error: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case LocationAttribute:
			es += "Location"
		case ValueAttribute:
			es += "Value"
		case SizeAttribute:
			es += "Size"
		case EncodingAttribute:
			es += "Encoding"
		case FingerprintAttribute:
			es += "Fingerprint"
		case ScoreVectorAttribute:
			es += "Score vector"
		default:
			es += "<unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += fmt.Sprintf(" (%v)", nextVal())
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case NotInDomainCondition:
		es += fmt.Sprintf("Value %v is not in the variable's domain", nextVal())
	case MissingAssignmentCondition:
		es += "Variable has no assignment"
	case UnassignedScopeCondition:
		es += "Constraint scope has an unassigned variable"
	case NoSolutionCondition:
		es += "Search exhausted without finding a solution"
	case InvalidBoardCondition:
		es += fmt.Sprintf("Not a valid board encoding: %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case OracleUnavailableCondition:
		es += "Oracle is unavailable"
	case OracleShapeCondition:
		es += fmt.Sprintf("Oracle returned the wrong shape: %v", nextVal())
	case MoveExhaustedCondition:
		es += "Every candidate move at this fingerprint has already been tried"
	case StaleRevisionCondition:
		es += "Board changed while a move was in flight; discarding the result"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
