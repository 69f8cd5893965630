package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PlayerInCheck returns true if any piece of pl's opponent can reach pl's king.
func (g *Game) PlayerInCheck(pl *chess.Player) bool {
	king := g.board.Piece(pl.King())
	if king.IsEmpty() {
		return false
	}
	return g.movesForPieces(g.otherPlayer(pl), false).Has(king.Position)
}

// ThreatVectors returns the threat-vector walk of pl's king from its square,
// or from at when at is non-nil.
func (g *Game) ThreatVectors(pl *chess.Player, at *chess.Coord) chess.MoveMap {
	king := g.board.Piece(pl.King())
	return g.LegalMovesFor(king, MoveOptions{Hypothetical: at, ThreatVector: true})
}
