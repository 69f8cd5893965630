package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// SafeMoves holds the destinations that resolve a check, split by mover.
type SafeMoves struct {
	King   chess.MoveMap `json:"king"`
	Allies chess.MoveMap `json:"allies"`
}

// Empty reports whether no move resolves the check.
func (s SafeMoves) Empty() bool {
	return len(s.King) == 0 && len(s.Allies) == 0
}

// filter keeps the moves of p that appear in the safe set for its kind.
func (s *SafeMoves) filter(p *chess.Piece, moves chess.MoveMap) chess.MoveMap {
	if s == nil {
		return moves
	}
	allowed := s.Allies
	if p.Kind == chess.King {
		allowed = s.King
	}
	out := chess.MoveMap{}
	for c, class := range moves {
		if allowed.Has(c) {
			out[c] = class
		}
	}
	return out
}

// SafeMovesFor computes the moves available to pl while in check.
//
// A king destination is safe when the king's threat-vector walk from that
// square meets no enemy piece. An ally destination is safe when it lies on
// the king's own threat-vector walk and that walk meets exactly one enemy
// piece; with two or more only the king can resolve the check.
func (g *Game) SafeMovesFor(pl *chess.Player) SafeMoves {
	safe := SafeMoves{King: chess.MoveMap{}, Allies: chess.MoveMap{}}
	king := g.board.Piece(pl.King())
	if king.IsEmpty() {
		return safe
	}

	threats := g.ThreatVectors(pl, nil)
	for dest, class := range g.withoutKingCaptures(g.LegalMovesFor(king, MoveOptions{})) {
		at := dest
		if g.ThreatVectors(pl, &at).Count(chess.Threat) == 0 {
			safe.King[dest] = class
		}
	}

	if threats.Count(chess.Threat) != 1 {
		return safe
	}
	for dest, class := range g.withoutKingCaptures(g.movesForPieces(pl, true)) {
		if threats.Has(dest) {
			safe.Allies[dest] = class
		}
	}
	return safe
}
