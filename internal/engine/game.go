// Package engine implements the chess rules: move generation, check
// detection, the safe moves that resolve check, and the turn state machine.
//
// A Game is single-threaded. Callers that share one across goroutines must
// serialise every call (see the session package).
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is the rule engine for one game between a bottom and a top player.
type Game struct {
	cfg   *config.Config
	board *chess.Board

	bottom  *chess.Player
	top     *chess.Player
	current *chess.Player
	winner  *chess.Player

	// turn counts completed half-moves, starting at 1.
	turn  int
	state State
	phase Phase

	// Valid only while a piece is selected.
	selected   *chess.Piece
	legalMoves chess.MoveMap

	// Valid only while state is Check.
	safeMoves *SafeMoves

	messages []string
}

// NewGame creates a game in the standard starting position with the bottom
// player to move.
func NewGame(cfg *config.Config) *Game {
	g := newGame(cfg)
	g.board.SetupInitialPosition(g.bottom, g.top)
	g.current = g.bottom
	return g
}

// NewGameFromPlacement creates a game from a FEN piece-placement field with
// toMove to play. The position is evaluated at once, so a game can start in
// check or even checkmate.
func NewGameFromPlacement(cfg *config.Config, placement string, toMove chess.Side) (*Game, error) {
	g := newGame(cfg)
	if err := g.board.SetupPlacement(placement, g.bottom, g.top); err != nil {
		return nil, err
	}
	g.current = g.bottom
	if toMove == chess.Top {
		g.current = g.top
	}
	g.evaluate()
	return g, nil
}

// newGame returns a game with an empty board and no player to move.
func newGame(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:    cfg,
		board:  chess.NewBoard(),
		bottom: chess.NewPlayer(cfg.BottomName, chess.Bottom),
		top:    chess.NewPlayer(cfg.TopName, chess.Top),
		turn:   1,
		state:  InProgress,
		phase:  SelectPiece,
	}
}

// SelectPieceAt selects the current player's piece on the named square and
// returns its legal destinations. While in check only destinations that
// resolve the check are offered. On failure the previous selection is kept
// unless the piece was the player's own and had no moves.
func (g *Game) SelectPieceAt(square string) (chess.MoveMap, error) {
	if g.state == Checkmate {
		return nil, g.requestError(errors.ErrGameOver, square, nil)
	}
	c, err := chess.ParseCoord(square)
	if err != nil {
		g.flash(msgInvalidSelection)
		return nil, g.requestError(err, square, nil)
	}
	return g.selectPiece(g.board.PieceAt(c), c.String())
}

func (g *Game) selectPiece(p *chess.Piece, square string) (chess.MoveMap, error) {
	if !p.IsOwnedBy(g.current) {
		g.flash(msgInvalidSelection)
		return nil, g.requestError(errors.ErrInvalidSelection, square, p)
	}

	moves := g.withoutKingCaptures(g.LegalMovesFor(p, MoveOptions{}))
	if g.state == Check {
		moves = g.safeMoves.filter(p, moves)
		if len(moves) == 0 {
			g.flash(msgInvalidMoveCheck)
		}
	}

	if len(moves) == 0 {
		g.clearSelection()
		g.flash(msgNoMovesAvailable)
		return nil, g.requestError(errors.ErrNoMovesAvailable, square, p)
	}

	g.selected = p
	g.legalMoves = moves
	g.phase = MovePiece
	g.flash(p.String())
	if castles := castlingTargets(moves); castles != "" {
		g.flash(fmt.Sprintf(msgCastling, castles))
	}
	g.logf(config.Commentary, "turn %d: %s selected %s (%d moves)\n", g.turn, g.current.Name, p, len(moves))
	return moves.Clone(), nil
}

// MovePieceTo moves the selected piece to the named square, applies any
// compound side effects and hands the turn to the other player. A square
// outside the offered moves fails with ErrInvalidMove and re-offers the
// selected piece's moves.
func (g *Game) MovePieceTo(square string) (MoveResult, error) {
	if g.state == Checkmate {
		return MoveResult{State: g.state}, g.requestError(errors.ErrGameOver, square, nil)
	}
	c, err := chess.ParseCoord(square)
	if err != nil {
		g.flash(msgInvalidMove)
		return MoveResult{State: g.state}, g.requestError(err, square, g.selected)
	}
	if g.selected == nil {
		g.flash(msgInvalidMove)
		return MoveResult{State: g.state}, g.requestError(errors.ErrInvalidMove, square, nil)
	}

	class, ok := g.legalMoves[c]
	if !ok {
		piece := g.selected
		if g.state == Check {
			g.flash(msgInvalidMoveCheck)
		} else {
			g.flash(msgInvalidMove)
		}
		g.reselect(piece)
		return MoveResult{State: g.state}, g.requestError(errors.ErrInvalidMove, square, piece)
	}

	result := g.apply(g.selected, c, class)
	g.turn++
	g.togglePlayer()
	g.evaluate()
	result.State = g.state
	return result, nil
}

// reselect offers p's moves again after a rejected destination.
func (g *Game) reselect(p *chess.Piece) {
	if _, err := g.selectPiece(p, p.Position.String()); err != nil {
		g.logf(config.Commentary, "turn %d: reselecting %s: %v\n", g.turn, p, err)
	}
}

// Cancel drops the current selection and returns to the selection phase.
func (g *Game) Cancel() {
	if g.phase == MovePiece {
		g.clearSelection()
	}
}

// PieceAt reports the owner and kind of the piece on the named square.
func (g *Game) PieceAt(square string) (chess.SquareInfo, error) {
	c, err := chess.ParseCoord(square)
	if err != nil {
		return chess.SquareInfo{}, err
	}
	return g.board.PieceAt(c).Info(), nil
}

// BoardState returns the owner and kind of every square in row-major order,
// rank 1 first.
func (g *Game) BoardState() chess.Snapshot {
	return g.board.Snapshot()
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() *chess.Player {
	return g.current
}

// Players returns the bottom and top players.
func (g *Game) Players() (bottom, top *chess.Player) {
	return g.bottom, g.top
}

// Turn returns the number of the half-move being played, starting at 1.
func (g *Game) Turn() int {
	return g.turn
}

// State returns the game state.
func (g *Game) State() State {
	return g.state
}

// Phase returns what the prompt should ask the current player for.
func (g *Game) Phase() Phase {
	return g.phase
}

// Winner returns the victorious player after checkmate, or nil.
func (g *Game) Winner() *chess.Player {
	return g.winner
}

// Selected returns the square of the selected piece, if any.
func (g *Game) Selected() (chess.Coord, bool) {
	if g.selected == nil {
		return chess.Coord{}, false
	}
	return g.selected.Position, true
}

// LegalMoves returns the destinations offered for the selected piece.
func (g *Game) LegalMoves() chess.MoveMap {
	return g.legalMoves.Clone()
}

// SafeMoves returns the moves that resolve the current check, or nil when
// the player to move is not in check.
func (g *Game) SafeMoves() *SafeMoves {
	return g.safeMoves
}

// Messages drains the queued player-facing messages.
func (g *Game) Messages() []string {
	out := g.messages
	g.messages = nil
	return out
}

// otherPlayer returns the opponent of pl.
func (g *Game) otherPlayer(pl *chess.Player) *chess.Player {
	if pl == g.bottom {
		return g.top
	}
	return g.bottom
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legalMoves = nil
	g.phase = SelectPiece
}

// requestError wraps err with the context of the failing request.
func (g *Game) requestError(err error, square string, p *chess.Piece) error {
	e := &errors.MoveError{
		Err:    err,
		Turn:   g.turn,
		Player: g.current.Name,
		Coord:  square,
	}
	if p != nil && !p.IsEmpty() {
		e.Piece = p.Kind.String()
	}
	return e
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Logging(level) {
		fmt.Fprintf(g.cfg.LogFile, format, args...)
	}
}
