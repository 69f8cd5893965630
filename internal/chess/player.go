package chess

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Player is one of the two sides of a game. Its piece set is an index of
// ids into the board's arena; the board owns the pieces themselves.
type Player struct {
	Name      string
	Side      Side
	MoveCount int

	pieces map[PieceID]struct{}
	king   PieceID
}

// NewPlayer creates a player with no pieces.
func NewPlayer(name string, side Side) *Player {
	return &Player{
		Name:   name,
		Side:   side,
		pieces: make(map[PieceID]struct{}),
	}
}

// Assign adds a piece to the player's index. The sentinel is ignored.
func (pl *Player) Assign(p *Piece) {
	if p.IsEmpty() {
		return
	}
	pl.pieces[p.ID] = struct{}{}
	if p.Kind == King {
		pl.king = p.ID
	}
}

// Remove drops a piece from the player's index.
func (pl *Player) Remove(id PieceID) {
	delete(pl.pieces, id)
	if pl.king == id {
		pl.king = NoPiece
	}
}

// Owns reports whether the piece is a live piece of the player.
func (pl *Player) Owns(id PieceID) bool {
	_, ok := pl.pieces[id]
	return ok
}

// King returns the id of the player's king.
func (pl *Player) King() PieceID {
	return pl.king
}

// PieceIDs returns the ids of all live pieces in ascending order.
func (pl *Player) PieceIDs() []PieceID {
	ids := maps.Keys(pl.pieces)
	slices.Sort(ids)
	return ids
}

// PieceCount returns the number of live pieces.
func (pl *Player) PieceCount() int {
	return len(pl.pieces)
}

// IncrementMoveCount records a completed move by the player.
func (pl *Player) IncrementMoveCount() {
	pl.MoveCount++
}

// String returns the player's name.
func (pl *Player) String() string {
	return pl.Name
}
