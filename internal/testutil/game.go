package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Mover is the part of a game a scripted test drives. R is the result type
// of an accepted move.
type Mover[R any] interface {
	SelectPieceAt(square string) (chess.MoveMap, error)
	MovePieceTo(square string) (R, error)
}

// MustPlay plays moves written as from and to squares, e.g. "e2e4", and
// returns the result of each. It calls t.Fatal on the first rejected
// selection or move.
func MustPlay[R any](t testing.TB, g Mover[R], moves ...string) []R {
	t.Helper()
	results := make([]R, 0, len(moves))
	for i, m := range moves {
		if len(m) != 4 {
			t.Fatalf("move %d: %q is not a from-to pair", i+1, m)
		}
		if _, err := g.SelectPieceAt(m[:2]); err != nil {
			t.Fatalf("move %d (%s): select: %v", i+1, m, err)
		}
		res, err := g.MovePieceTo(m[2:])
		if err != nil {
			t.Fatalf("move %d (%s): move: %v", i+1, m, err)
		}
		results = append(results, res)
	}
	return results
}

// MoveSet builds a move map from entries like "e4" (a plain move) or
// "d5:capture". It panics on malformed entries.
func MoveSet(entries ...string) chess.MoveMap {
	classes := map[string]chess.MoveClass{}
	for _, c := range []chess.MoveClass{chess.MoveTo, chess.Capture, chess.EnPassantCapture, chess.Castle, chess.Threat} {
		classes[c.String()] = c
	}

	moves := chess.MoveMap{}
	for _, e := range entries {
		square, name, found := strings.Cut(e, ":")
		class := chess.MoveTo
		if found {
			var ok bool
			if class, ok = classes[name]; !ok {
				panic(fmt.Sprintf("testutil: unknown move class %q", name))
			}
		}
		moves[chess.MustParseCoord(square)] = class
	}
	return moves
}
