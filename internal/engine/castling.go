package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// CastlingMovesFor returns the castling destinations of an unmoved king.
// Castling is refused while the game is in check. For each side the rook
// in the corner must be unmoved and every square from the king to the rook
// must be reached as an empty square by the king's threat-vector walk.
// Attacks on those squares are not considered.
func (g *Game) CastlingMovesFor(king *chess.Piece) chess.MoveMap {
	moves := chess.MoveMap{}
	if king.Kind != chess.King || king.MovesMade != 0 || g.state == Check {
		return moves
	}

	seen := g.walk(king, MoveOptions{ThreatVector: true})
	rank := king.Side().HomeRank()

	for _, offset := range king.SpecialMoves(chess.Castling) {
		dest := king.Position.Add(offset)
		if !dest.InBounds() {
			continue
		}

		rookFile, first, last := 1, 2, king.Position.File-1
		if dest.File > king.Position.File {
			rookFile, first, last = chess.BoardSize, king.Position.File+1, chess.BoardSize-1
		}

		rook := g.board.PieceAt(chess.Coord{File: rookFile, Rank: rank})
		if rook.Kind != chess.Rook || !rook.IsOwnedBy(king.Owner) || rook.MovesMade != 0 {
			continue
		}

		clear := true
		for file := first; file <= last; file++ {
			if class, ok := seen[chess.Coord{File: file, Rank: rank}]; !ok || class != chess.MoveTo {
				clear = false
				break
			}
		}
		if clear {
			moves[dest] = chess.Castle
		}
	}
	return moves
}

// castleRook moves the rook that belongs to a king's castling move from
// kingFrom to kingTo. The rook lands on the square the king crossed.
func (g *Game) castleRook(king *chess.Piece, kingFrom, kingTo chess.Coord) *chess.Piece {
	rookFile, rookTo := 1, kingTo.File+1
	if kingTo.File > kingFrom.File {
		rookFile, rookTo = chess.BoardSize, kingTo.File-1
	}
	rook := g.board.PieceAt(chess.Coord{File: rookFile, Rank: kingFrom.Rank})
	if rook.Kind != chess.Rook || !rook.IsOwnedBy(king.Owner) {
		return nil
	}
	g.board.MovePiece(rook, chess.Coord{File: rookTo, Rank: kingFrom.Rank}, true)
	return rook
}

// castlingTargets lists the castling destinations of moves, e.g. "c1 or g1".
func castlingTargets(moves chess.MoveMap) string {
	var squares []string
	for _, c := range moves.Keys() {
		if moves[c] == chess.Castle {
			squares = append(squares, c.String())
		}
	}
	return strings.Join(squares, " or ")
}
