package pipes

import "math"

// Encode renders a full board as the canonical solution string:
// each cell's 4-character opening vector, Up/Right/Down/Left, in
// row-major order.
func Encode(board []Pipe) string {
	buf := make([]byte, 0, len(board)*4)
	for _, p := range board {
		buf = append(buf, p.String()...)
	}
	return string(buf)
}

// Decode parses a canonical solution string back into a board
// and the grid size it implies.  It fails if the string's length
// isn't a multiple of 4 whose quotient is a perfect square, or
// if any 4-character chunk isn't a valid pipe encoding.
func Decode(s string) ([]Pipe, int, error) {
	if len(s)%4 != 0 {
		return nil, 0, &Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Condition: InvalidBoardCondition,
			Attribute: EncodingAttribute,
			Values:    ErrorData{s},
		}
	}
	cells := len(s) / 4
	n := int(math.Sqrt(float64(cells)))
	if n*n != cells {
		return nil, 0, &Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Condition: InvalidBoardCondition,
			Attribute: EncodingAttribute,
			Values:    ErrorData{s},
		}
	}
	board := make([]Pipe, cells)
	for i := 0; i < cells; i++ {
		p, ok := ParsePipe(s[i*4 : i*4+4])
		if !ok {
			return nil, 0, &Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Condition: InvalidBoardCondition,
				Attribute: EncodingAttribute,
				Values:    ErrorData{s},
			}
		}
		board[i] = p
	}
	return board, n, nil
}
