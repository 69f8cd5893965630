package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Coord is a board square as a (file, rank) pair, each in [1, BoardSize].
// File 1 is the a-file and rank 1 is the bottom player's back rank.
type Coord struct {
	File int
	Rank int
}

// Offset is a direction vector applied to a Coord.
type Offset struct {
	DX int
	DY int
}

// numberForLetter converts a file letter to its 1-based index.
var numberForLetter = map[byte]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4,
	'e': 5, 'f': 6, 'g': 7, 'h': 8,
}

// ParseCoord converts notation such as "a1" or "H8" into a Coord.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, errors.Wrapf(errors.ErrInvalidCoordinate, "%q", s)
	}
	letter := s[0]
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	file, ok := numberForLetter[letter]
	if !ok || s[1] < '1' || s[1] > '8' {
		return Coord{}, errors.Wrapf(errors.ErrInvalidCoordinate, "%q", s)
	}
	return Coord{File: file, Rank: int(s[1] - '0')}, nil
}

// MustParseCoord is like ParseCoord but panics on malformed input.
// It is intended for tables and tests.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the notation for the square, e.g. "e4".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte('a' + c.File - 1), byte('0' + c.Rank)})
}

// MarshalText encodes the square by name, so a MoveMap encodes as a JSON object.
func (c Coord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a square from its name.
func (c *Coord) UnmarshalText(text []byte) error {
	parsed, err := ParseCoord(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// InBounds reports whether the square lies on the board.
func (c Coord) InBounds() bool {
	return c.File >= 1 && c.File <= BoardSize && c.Rank >= 1 && c.Rank <= BoardSize
}

// Add returns the square reached by applying o to c.
func (c Coord) Add(o Offset) Coord {
	return Coord{File: c.File + o.DX, Rank: c.Rank + o.DY}
}

// Sub returns the offset leading from other to c.
func (c Coord) Sub(other Coord) Offset {
	return Offset{DX: c.File - other.File, DY: c.Rank - other.Rank}
}

// Rotate multiplies both axes by rotation (1 or -1).
func (o Offset) Rotate(rotation int) Offset {
	return Offset{DX: o.DX * rotation, DY: o.DY * rotation}
}

// index converts a Coord into zero-based array indices.
func (c Coord) index() (int, int) {
	return c.File - 1, c.Rank - 1
}
