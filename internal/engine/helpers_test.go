package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	return NewGame(cfg)
}

func newPlacementGame(t *testing.T, placement string, toMove chess.Side) *Game {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	g, err := NewGameFromPlacement(cfg, placement, toMove)
	if err != nil {
		t.Fatalf("NewGameFromPlacement(%q) error: %v", placement, err)
	}
	return g
}

func play(t *testing.T, g *Game, moves ...string) []MoveResult {
	t.Helper()
	return testutil.MustPlay[MoveResult](t, g, moves...)
}

func sq(s string) chess.Coord {
	return chess.MustParseCoord(s)
}
