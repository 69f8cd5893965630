package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves applies the pawn rules to the ray-walk result: no capture
// straight ahead, the two-square opening move, en passant and diagonal
// captures.
func (g *Game) pawnMoves(p *chess.Piece, walked chess.MoveMap) chess.MoveMap {
	moves := chess.MoveMap{}
	for c, class := range walked {
		if class != chess.Capture {
			moves[c] = class
		}
	}

	if p.MovesMade == 0 {
		forward := p.Position.Add(p.Offsets()[0])
		for _, offset := range p.SpecialMoves(chess.OpeningMove) {
			dest := p.Position.Add(offset)
			if dest.InBounds() && forward.InBounds() &&
				g.board.PieceAt(forward).IsEmpty() && g.board.PieceAt(dest).IsEmpty() {
				moves[dest] = chess.MoveTo
			}
		}
	}

	for _, offset := range p.SpecialMoves(chess.EnPassant) {
		beside := p.Position.Add(offset)
		if !beside.InBounds() {
			continue
		}
		enemy := g.board.PieceAt(beside)
		if enemy.Kind == chess.Pawn && enemy.IsEnemyOf(p) &&
			enemy.OpeningMoveTurn != chess.NeverMoved && g.turn-enemy.OpeningMoveTurn == 1 {
			moves[beside] = chess.EnPassantCapture
		}
	}

	for _, offset := range p.SpecialMoves(chess.DiagonalCapture) {
		dest := p.Position.Add(offset)
		if dest.InBounds() && g.board.PieceAt(dest).IsEnemyOf(p) {
			moves[dest] = chess.Capture
		}
	}

	return moves
}
