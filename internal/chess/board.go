package chess

// Board is the 8x8 grid. It owns every piece through an arena indexed by
// PieceID; cells and player indexes hold ids only. Slot 0 of the arena is
// the empty sentinel, so a zero-valued cell is always a valid empty square.
type Board struct {
	// cells[file-1][rank-1]
	cells [BoardSize][BoardSize]PieceID

	arena []*Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		arena: []*Piece{newPiece(NoPiece, Empty, nil)},
	}
}

// NewPiece allocates a piece in the arena and registers it with its owner.
// The piece is not placed on any square.
func (b *Board) NewPiece(kind Kind, owner *Player) *Piece {
	p := newPiece(PieceID(len(b.arena)), kind, owner)
	b.arena = append(b.arena, p)
	if owner != nil {
		owner.Assign(p)
	}
	return p
}

// Piece returns the piece with the given id, or the sentinel for unknown ids.
func (b *Board) Piece(id PieceID) *Piece {
	if id <= NoPiece || int(id) >= len(b.arena) {
		return b.arena[NoPiece]
	}
	return b.arena[id]
}

// Place writes a piece into the cell at c and records its position.
// Placing the sentinel clears the cell. Callers validate bounds.
func (b *Board) Place(p *Piece, c Coord) {
	f, r := c.index()
	b.cells[f][r] = p.ID
	if !p.IsEmpty() {
		p.setPosition(c)
	}
}

// PieceAt returns the piece on c, or the sentinel for an empty square.
// Callers validate bounds.
func (b *Board) PieceAt(c Coord) *Piece {
	f, r := c.index()
	return b.arena[b.cells[f][r]]
}

// MovePiece relocates p to dest, leaving the sentinel behind. Whatever stood
// on dest is overwritten, so a captured piece must already have been removed
// from its owner. The move counter is incremented unless suppressed.
// It reports whether the move promoted a pawn.
func (b *Board) MovePiece(p *Piece, dest Coord, incrementMoveCount bool) bool {
	if p.IsEmpty() {
		return false
	}
	f, r := p.Position.index()
	if b.cells[f][r] == p.ID {
		b.cells[f][r] = NoPiece
	}
	f, r = dest.index()
	b.cells[f][r] = p.ID
	if incrementMoveCount {
		p.MovesMade++
	}
	return p.setPosition(dest)
}

// Capture removes the occupant of c from the board and from its owner's
// piece index. It returns the captured piece, or nil for an empty square.
func (b *Board) Capture(c Coord) *Piece {
	p := b.PieceAt(c)
	if p.IsEmpty() {
		return nil
	}
	f, r := c.index()
	b.cells[f][r] = NoPiece
	if p.Owner != nil {
		p.Owner.Remove(p.ID)
	}
	return p
}

// PiecesOf returns the live pieces of a player in id order.
func (b *Board) PiecesOf(pl *Player) []*Piece {
	ids := pl.PieceIDs()
	out := make([]*Piece, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.Piece(id))
	}
	return out
}

// backRank lists the pieces of the home rank from the a-file to the h-file.
var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition places the 32 pieces of the standard starting position.
func (b *Board) SetupInitialPosition(bottom, top *Player) {
	for _, pl := range []*Player{bottom, top} {
		for file := 1; file <= BoardSize; file++ {
			b.Place(b.NewPiece(backRank[file-1], pl), Coord{File: file, Rank: pl.Side.HomeRank()})
		}
		for file := 1; file <= BoardSize; file++ {
			b.Place(b.NewPiece(Pawn, pl), Coord{File: file, Rank: pl.Side.PawnRank()})
		}
	}
}

// SquareInfo is what the display layer may know about a square.
type SquareInfo struct {
	Owner Side `json:"owner"`
	Kind  Kind `json:"kind"`
}

// Snapshot is the full board in row-major order: Snapshot[rank-1][file-1].
type Snapshot [BoardSize][BoardSize]SquareInfo

// Snapshot returns the owner and kind of every square.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for file := 1; file <= BoardSize; file++ {
		for rank := 1; rank <= BoardSize; rank++ {
			s[rank-1][file-1] = b.PieceAt(Coord{File: file, Rank: rank}).Info()
		}
	}
	return s
}

// At returns the entry for c.
func (s Snapshot) At(c Coord) SquareInfo {
	return s[c.Rank-1][c.File-1]
}
