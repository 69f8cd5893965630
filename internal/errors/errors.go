// Package errors provides sentinel errors and error types for the chess rule engine.
// It defines the recoverable conditions a caller can hit while selecting and
// moving pieces, and a structured error type that preserves request context
// while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSelection indicates an empty square or a piece not owned by
	// the player to move.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoMovesAvailable indicates the selected piece has no legal destination.
	ErrNoMovesAvailable = errors.New("no moves available")

	// ErrInvalidMove indicates a destination outside the offered legal moves.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidCoordinate indicates a malformed or off-board square name.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrGameOver indicates a request made after checkmate.
	ErrGameOver = errors.New("game over")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidPlacement indicates a malformed FEN piece-placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInvalidScript indicates a replay line that is not a list of
	// from-to moves.
	ErrInvalidScript = errors.New("invalid replay script")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the context of the request that failed:
// the turn, the player to move, the square involved and the selected piece.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Turn   int    // Turn number when the request was made (0 if not applicable)
	Player string // Name of the player to move (if known)
	Coord  string // The square named in the request (if applicable)
	Piece  string // The selected piece, e.g. "pawn" (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.Coord != "" {
		parts = append(parts, fmt.Sprintf("square %q", e.Coord))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
