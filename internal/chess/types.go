// Package chess provides the board, pieces and players of a two-player chess game.
package chess

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Side is the edge of the board a player starts from. It orients pawn
// movement and the rotation of every offset table.
type Side int

const (
	NoSide Side = iota // Owner of the empty sentinel
	Bottom
	Top
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	}
	return "none"
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a side from its name.
func (s *Side) UnmarshalText(text []byte) error {
	for _, side := range []Side{NoSide, Bottom, Top} {
		if side.String() == string(text) {
			*s = side
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", text)
}

// Rotation returns the factor applied to bottom-oriented offsets.
func (s Side) Rotation() int {
	if s == Top {
		return -1
	}
	return 1
}

// HomeRank returns the rank holding the side's back row.
func (s Side) HomeRank() int {
	if s == Top {
		return BoardSize
	}
	return 1
}

// PawnRank returns the rank the side's pawns start on.
func (s Side) PawnRank() int {
	if s == Top {
		return BoardSize - 1
	}
	return 2
}

// FarRank returns the rank on which the side's pawns promote.
func (s Side) FarRank() int {
	if s == Top {
		return 1
	}
	return BoardSize
}

// Kind is the variant of a piece.
type Kind int

const (
	Empty Kind = iota // Sentinel for unoccupied squares
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Title returns the capitalised name, e.g. "Pawn".
func (k Kind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind := Empty; kind <= King; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// MoveClass tags a destination in a move map.
type MoveClass int

const (
	MoveTo           MoveClass = iota // Plain move onto an empty square
	Capture                           // Capture of an enemy piece
	EnPassantCapture                  // Capture of a pawn that just made its opening move
	Castle                            // King's two-square castling move
	Threat                            // Enemy piece met by a threat-vector walk
)

// String returns the string representation of a move class.
func (m MoveClass) String() string {
	names := []string{"move", "capture", "en_passant_capture", "castle", "threat"}
	if int(m) >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// MarshalText encodes the move class by name.
func (m MoveClass) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a move class from its name.
func (m *MoveClass) UnmarshalText(text []byte) error {
	for class := MoveTo; class <= Threat; class++ {
		if class.String() == string(text) {
			*m = class
			return nil
		}
	}
	return fmt.Errorf("unknown move class %q", text)
}

// SpecialMove keys the special-move table of pawns and kings.
type SpecialMove int

const (
	OpeningMove SpecialMove = iota
	EnPassant
	DiagonalCapture
	Castling
)

// MoveMap maps each destination square to the class of move reaching it.
type MoveMap map[Coord]MoveClass

// Has reports whether c is a destination.
func (m MoveMap) Has(c Coord) bool {
	_, ok := m[c]
	return ok
}

// Count returns the number of destinations tagged with class.
func (m MoveMap) Count(class MoveClass) int {
	n := 0
	for _, v := range m {
		if v == class {
			n++
		}
	}
	return n
}

// Merge copies every entry of other into m, overwriting existing tags.
func (m MoveMap) Merge(other MoveMap) {
	for c, class := range other {
		m[c] = class
	}
}

// Clone returns a copy of m.
func (m MoveMap) Clone() MoveMap {
	out := make(MoveMap, len(m))
	out.Merge(m)
	return out
}

// Keys returns the destinations ordered by rank, then file.
func (m MoveMap) Keys() []Coord {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Rank != keys[j].Rank {
			return keys[i].Rank < keys[j].Rank
		}
		return keys[i].File < keys[j].File
	})
	return keys
}

// Notation returns the map keyed by square name, for display and tests.
func (m MoveMap) Notation() map[string]MoveClass {
	out := make(map[string]MoveClass, len(m))
	for c, class := range m {
		out[c.String()] = class
	}
	return out
}
