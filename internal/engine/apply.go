package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// apply performs an offered move of p to dest, including the compound
// effects of en passant, castling and promotion.
func (g *Game) apply(p *chess.Piece, dest chess.Coord, class chess.MoveClass) MoveResult {
	from := p.Position
	res := MoveResult{Piece: p.Kind, From: from, To: dest, Class: class}

	if captured := g.board.Capture(dest); captured != nil {
		res.Captured = &CapturedPiece{
			Owner: captured.Owner.Name,
			Side:  captured.Side(),
			Kind:  captured.Kind,
		}
		msg := strings.NewReplacer("<PLAYER>", captured.Owner.Name, "<PIECE>", captured.Kind.Title()).
			Replace(msgCapturedPiece)
		g.flash(msg)
		g.logf(config.Commentary, "turn %d: %s captured %s\n", g.turn, g.current.Name, captured)
	}

	step := dest.Sub(from)
	wasPawn := p.Kind == chess.Pawn
	if wasPawn && abs(step.DY) == 2 {
		p.OpeningMoveTurn = g.turn
	}

	res.Promoted = g.board.MovePiece(p, dest, true)

	switch {
	case wasPawn && abs(step.DX) == 1 && step.DY == 0:
		// En passant: the pawn took the enemy on its own square and now
		// completes the move one square forward.
		forward := dest.Add(p.Offsets()[0])
		res.Promoted = g.board.MovePiece(p, forward, false) || res.Promoted
		res.To = forward
	case p.Kind == chess.King && abs(step.DX) == 2:
		if rook := g.castleRook(p, from, dest); rook != nil {
			res.Castled = true
			g.logf(config.Commentary, "turn %d: %s castled, rook to %s\n", g.turn, g.current.Name, rook.Position)
		}
	}

	g.logf(config.Commentary, "turn %d: %s %s %s-%s\n", g.turn, g.current.Name, res.Piece, from, res.To)
	return res
}
