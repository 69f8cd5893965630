package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func newTestManager() *Manager {
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	return NewManager(cfg)
}

func TestManager_NewGameAndGet(t *testing.T) {
	m := newTestManager()
	s := m.NewGame()

	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("session id %q is not a uuid: %v", s.ID, err)
	}
	got, err := m.Get(s.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == s, "Get returns the same session")
	testutil.AssertEqual(t, s.BoardState().Placement(), chess.InitialPlacement)
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestManager_GetUnknown(t *testing.T) {
	m := newTestManager()
	_, err := m.Get("missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
	testutil.AssertContains(t, err.Error(), `"missing"`)
}

func TestManager_Remove(t *testing.T) {
	m := newTestManager()
	a, b := m.NewGame(), m.NewGame()

	testutil.AssertNoError(t, m.Remove(a.ID))
	testutil.AssertErrorIs(t, m.Remove(a.ID), errors.ErrGameNotFound)
	testutil.AssertEqual(t, m.IDs(), []string{b.ID})
}

func TestManager_NewGameFromPlacement(t *testing.T) {
	m := newTestManager()

	s, err := m.NewGameFromPlacement("4k3/8/8/8/8/8/8/4K3", chess.Top)
	testutil.AssertNoError(t, err)
	err = s.Do(func(g *engine.Game) error {
		testutil.AssertEqual(t, g.CurrentPlayer().Side, chess.Top)
		return nil
	})
	testutil.AssertNoError(t, err)

	_, err = m.NewGameFromPlacement("8/8/8", chess.Bottom)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPlacement)
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestSession_Play(t *testing.T) {
	m := newTestManager()
	s := m.NewGame()
	created := s.UpdatedAt()

	results := testutil.MustPlay[engine.MoveResult](t, s, "f2f4", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, results[3].State, engine.Checkmate)
	testutil.AssertFalse(t, s.UpdatedAt().Before(created), "updated after moves")

	info, err := s.PieceAt("h4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, info, chess.SquareInfo{Owner: chess.Top, Kind: chess.Queen})

	msgs := s.Messages()
	testutil.AssertEqual(t, msgs[len(msgs)-1], "Player 2 is victorious! Congratulations!")
}

func TestSession_Cancel(t *testing.T) {
	s := newTestManager().NewGame()
	if _, err := s.SelectPieceAt("e2"); err != nil {
		t.Fatalf("SelectPieceAt(e2) error: %v", err)
	}
	s.Cancel()
	_, err := s.MovePieceTo("e4")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	m := newTestManager()
	s := m.NewGame()

	const readers = 8
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := m.Get(s.ID); err != nil {
					t.Errorf("Get error: %v", err)
					return
				}
				s.BoardState()
				if _, err := s.PieceAt("e1"); err != nil {
					t.Errorf("PieceAt error: %v", err)
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, mv := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
			if _, err := s.SelectPieceAt(mv[:2]); err != nil {
				t.Errorf("SelectPieceAt(%s) error: %v", mv[:2], err)
				return
			}
			if _, err := s.MovePieceTo(mv[2:]); err != nil {
				t.Errorf("MovePieceTo(%s) error: %v", mv[2:], err)
				return
			}
		}
	}()
	wg.Wait()

	testutil.AssertEqual(t, s.BoardState().Placement(), "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R")
}
