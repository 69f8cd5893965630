package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// State is the game state after the last accepted move.
type State int

const (
	InProgress State = iota
	Check            // The player to move is in check
	Checkmate        // Terminal; no further moves are accepted
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	}
	return "in_progress"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state from its name.
func (s *State) UnmarshalText(text []byte) error {
	for state := InProgress; state <= Checkmate; state++ {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", text)
}

// Phase is the kind of input the current player is expected to give.
type Phase int

const (
	SelectPiece Phase = iota
	MovePiece
	GameWon
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case MovePiece:
		return "move_piece"
	case GameWon:
		return "game_won"
	}
	return "select_piece"
}

// Player-facing messages.
const (
	msgInvalidSelection = "Invalid selection!"
	msgNoMovesAvailable = "No moves available for that piece"
	msgPlayerInCheck    = "<PLAYER>, you are in check! Your moves are limited."
	msgInvalidMove      = "Invalid move! Try again."
	msgInvalidMoveCheck = "No moves available for that piece - protect your king!"
	msgCapturedPiece    = "You captured <PLAYER>'s <PIECE>!"
	msgCastling         = "(You may castle to %s)"
	msgGameOver         = "<PLAYER> is victorious! Congratulations!"
)

// CapturedPiece describes a piece taken by a move.
type CapturedPiece struct {
	Owner string     `json:"owner"`
	Side  chess.Side `json:"side"`
	Kind  chess.Kind `json:"kind"`
}

// MoveResult describes an accepted move.
type MoveResult struct {
	State    State           `json:"state"`
	Piece    chess.Kind      `json:"piece"`
	From     chess.Coord     `json:"from"`
	To       chess.Coord     `json:"to"`
	Class    chess.MoveClass `json:"class"`
	Captured *CapturedPiece  `json:"captured,omitempty"`
	Promoted bool            `json:"promoted,omitempty"`
	Castled  bool            `json:"castled,omitempty"`
}

// togglePlayer credits the move to the current player and hands the turn to
// the opponent. Per-selection state belongs to the previous player and is
// discarded.
func (g *Game) togglePlayer() {
	g.current.IncrementMoveCount()
	g.current = g.otherPlayer(g.current)
	g.clearSelection()
	g.safeMoves = nil
}

// evaluate re-computes the state for the player now to move.
func (g *Game) evaluate() {
	g.state = InProgress
	if !g.PlayerInCheck(g.current) {
		return
	}

	g.state = Check
	safe := g.SafeMovesFor(g.current)
	g.safeMoves = &safe
	if !safe.Empty() {
		g.flash(strings.ReplaceAll(msgPlayerInCheck, "<PLAYER>", g.current.Name))
		g.logf(config.Commentary, "turn %d: %s is in check (%d king moves, %d ally moves)\n",
			g.turn, g.current.Name, len(safe.King), len(safe.Allies))
		return
	}

	g.state = Checkmate
	g.phase = GameWon
	g.winner = g.otherPlayer(g.current)
	g.flash(strings.ReplaceAll(msgGameOver, "<PLAYER>", g.winner.Name))
	g.logf(config.Results, "checkmate after %d half-moves: %s wins\n", g.turn-1, g.winner.Name)
}

func (g *Game) flash(msg string) {
	for _, m := range g.messages {
		if m == msg {
			return
		}
	}
	g.messages = append(g.messages, msg)
}
