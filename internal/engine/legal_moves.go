package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveOptions adjusts move generation for check analysis.
type MoveOptions struct {
	// Hypothetical, when set, replaces the piece's real starting square.
	Hypothetical *chess.Coord

	// ThreatVector tags enemy pieces as chess.Threat instead of
	// chess.Capture and skips special moves. Jumping pieces keep walking
	// past their first step in this mode, so a king walks like a queen and
	// a knight repeats its leap.
	ThreatVector bool
}

// LegalMovesFor returns the destinations of p: a ray walk along each offset
// followed by the pawn and king special moves.
func (g *Game) LegalMovesFor(p *chess.Piece, opts MoveOptions) chess.MoveMap {
	moves := g.walk(p, opts)
	if opts.ThreatVector {
		return moves
	}
	return g.applySpecialMoves(p, moves)
}

// walk follows every offset of p until it leaves the board or meets a
// piece. An own piece ends the ray, an enemy piece ends it after being
// recorded.
func (g *Game) walk(p *chess.Piece, opts MoveOptions) chess.MoveMap {
	moves := chess.MoveMap{}
	if p.IsEmpty() {
		return moves
	}

	start := p.Position
	if opts.Hypothetical != nil {
		start = *opts.Hypothetical
	}
	enemyClass := chess.Capture
	if opts.ThreatVector {
		enemyClass = chess.Threat
	}

	for _, offset := range p.Offsets() {
		pos := start
		for {
			pos = pos.Add(offset)
			if !g.isOpenTo(p, pos) {
				break
			}
			if g.board.PieceAt(pos).IsEnemyOf(p) {
				moves[pos] = enemyClass
				break
			}
			moves[pos] = chess.MoveTo
			if p.Jumps() && !opts.ThreatVector {
				break
			}
		}
	}
	return moves
}

// withoutKingCaptures drops destinations holding a king. Checkmate ends the
// game, so a king is never taken; the squares stay in the walks that
// detect check.
func (g *Game) withoutKingCaptures(moves chess.MoveMap) chess.MoveMap {
	for c := range moves {
		if g.board.PieceAt(c).Kind == chess.King {
			delete(moves, c)
		}
	}
	return moves
}

// isOpenTo reports whether c is on the board and not held by p's owner.
func (g *Game) isOpenTo(p *chess.Piece, c chess.Coord) bool {
	return c.InBounds() && !g.board.PieceAt(c).IsOwnedBy(p.Owner)
}

// applySpecialMoves adds or removes the moves that depend on a piece's
// kind and history.
func (g *Game) applySpecialMoves(p *chess.Piece, moves chess.MoveMap) chess.MoveMap {
	switch p.Kind {
	case chess.Pawn:
		return g.pawnMoves(p, moves)
	case chess.King:
		moves.Merge(g.CastlingMovesFor(p))
	}
	return moves
}

// movesForPieces returns the union of the destinations of every live piece
// of pl, optionally leaving out the king.
func (g *Game) movesForPieces(pl *chess.Player, excludeKing bool) chess.MoveMap {
	all := chess.MoveMap{}
	for _, p := range g.board.PiecesOf(pl) {
		if excludeKing && p.Kind == chess.King {
			continue
		}
		all.Merge(g.LegalMovesFor(p, MoveOptions{}))
	}
	return all
}
