package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the FEN piece-placement field of the starting position.
// Upper case letters belong to the bottom side.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var kindForLetter = map[rune]Kind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// Placement returns the FEN piece-placement field of the snapshot,
// rank 8 first.
func (s Snapshot) Placement() string {
	var sb strings.Builder
	for rank := BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 1; file <= BoardSize; file++ {
			info := s[rank-1][file-1]
			if info.Kind == Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := info.Kind.Letter()
			if info.Owner == Top {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// SetupPlacement places pieces from a FEN piece-placement field on an empty
// board. Each side needs exactly one king. Pawns off their starting rank
// count as having moved, so they get no opening move; every other piece is
// treated as unmoved.
func (b *Board) SetupPlacement(placement string, bottom, top *Player) error {
	rows := strings.Split(placement, "/")
	if len(rows) != BoardSize {
		return fmt.Errorf("%d ranks in %q: %w", len(rows), placement, errors.ErrInvalidPlacement)
	}

	for i, row := range rows {
		rank := BoardSize - i
		file := 1
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := kindForLetter[unicode.ToLower(c)]
			if !ok {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidPlacement)
			}
			pos := Coord{File: file, Rank: rank}
			if !pos.InBounds() {
				return fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidPlacement)
			}
			owner := bottom
			if unicode.IsLower(c) {
				owner = top
			}
			if kind == King && owner.King() != NoPiece {
				return fmt.Errorf("second %s king at %s: %w", owner.Side, pos, errors.ErrInvalidPlacement)
			}
			p := b.NewPiece(kind, owner)
			if kind == Pawn && rank != owner.Side.PawnRank() {
				p.MovesMade = 1
			}
			b.Place(p, pos)
			file++
		}
		if file != BoardSize+1 {
			return fmt.Errorf("rank %d has %d files: %w", rank, file-1, errors.ErrInvalidPlacement)
		}
	}

	for _, pl := range []*Player{bottom, top} {
		if pl.King() == NoPiece {
			return fmt.Errorf("%s has no king: %w", pl.Side, errors.ErrInvalidPlacement)
		}
	}
	return nil
}
