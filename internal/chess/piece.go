package chess

// PieceID is a stable handle into the board's piece arena.
type PieceID int

// NoPiece is the id of the empty sentinel that fills unoccupied squares.
const NoPiece PieceID = 0

// NeverMoved marks a pawn that has not made its opening move.
const NeverMoved = -1

// variant holds the static movement data of a piece kind, written for the
// bottom side.
type variant struct {
	jumps   bool
	offsets []Offset
	special map[SpecialMove][]Offset
}

var (
	diagonals = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straights = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	allUnits  = []Offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

var variants = map[Kind]variant{
	Empty: {},
	Pawn: {
		jumps:   true,
		offsets: []Offset{{0, 1}},
		special: map[SpecialMove][]Offset{
			OpeningMove:     {{0, 2}},
			DiagonalCapture: {{1, 1}, {-1, 1}},
			EnPassant:       {{1, 0}, {-1, 0}},
		},
	},
	Knight: {
		jumps:   true,
		offsets: []Offset{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}},
	},
	Bishop: {offsets: diagonals},
	Rook:   {offsets: straights},
	Queen:  {offsets: allUnits},
	King: {
		jumps:   true,
		offsets: allUnits,
		special: map[SpecialMove][]Offset{
			Castling: {{-2, 0}, {2, 0}},
		},
	},
}

// Piece is a chess piece, or the empty sentinel when Kind is Empty.
// The sentinel has no owner, so owner and kind queries work on every square.
type Piece struct {
	ID    PieceID
	Kind  Kind
	Owner *Player

	// Position is authoritative; the board cell is derived from it.
	Position Coord

	// MovesMade counts completed moves of this piece.
	MovesMade int

	// OpeningMoveTurn is the turn of the pawn's two-square advance, or NeverMoved.
	OpeningMoveTurn int

	// Promoted is set once a pawn has become a queen.
	Promoted bool

	variant variant
}

func newPiece(id PieceID, kind Kind, owner *Player) *Piece {
	return &Piece{
		ID:              id,
		Kind:            kind,
		Owner:           owner,
		OpeningMoveTurn: NeverMoved,
		variant:         variants[kind],
	}
}

// Side returns the owner's side, or NoSide for the sentinel.
func (p *Piece) Side() Side {
	if p.Owner == nil {
		return NoSide
	}
	return p.Owner.Side
}

// IsEmpty reports whether p is the empty sentinel.
func (p *Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsOwnedBy reports whether pl owns p. The sentinel is owned by nobody.
func (p *Piece) IsOwnedBy(pl *Player) bool {
	return p.Owner != nil && p.Owner == pl
}

// IsEnemyOf reports whether p and other are owned by different players.
func (p *Piece) IsEnemyOf(other *Piece) bool {
	return p.Owner != nil && other.Owner != nil && p.Owner != other.Owner
}

// Jumps reports whether the piece stops after a single step per direction.
func (p *Piece) Jumps() bool {
	return p.variant.jumps
}

// Offsets returns the direction vectors oriented for the owner's side.
func (p *Piece) Offsets() []Offset {
	return rotateAll(p.variant.offsets, p.Side().Rotation())
}

// SpecialMoves returns the oriented offsets registered under key.
func (p *Piece) SpecialMoves(key SpecialMove) []Offset {
	return rotateAll(p.variant.special[key], p.Side().Rotation())
}

// Info returns the owner and kind of the piece as seen by the display layer.
func (p *Piece) Info() SquareInfo {
	return SquareInfo{Owner: p.Side(), Kind: p.Kind}
}

// String returns a descriptor such as "Pawn c2".
func (p *Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Kind.Title() + " " + p.Position.String()
}

// setPosition records a new position. A pawn reaching its far rank becomes
// a queen, keeping its identity, owner and move history.
func (p *Piece) setPosition(c Coord) bool {
	p.Position = c
	if p.Kind != Pawn || p.Owner == nil || c.Rank != p.Owner.Side.FarRank() {
		return false
	}
	p.Kind = Queen
	p.variant = variants[Queen]
	p.Promoted = true
	return true
}

func rotateAll(offsets []Offset, rotation int) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = o.Rotate(rotation)
	}
	return out
}
