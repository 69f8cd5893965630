package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// promptFixture runs a prompt over scripted input and captures everything
// it writes.
type promptFixture struct {
	p      *prompt
	mgr    *session.Manager
	frames bytes.Buffer
	asked  bytes.Buffer
}

func newPromptFixture(t *testing.T, input string) *promptFixture {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	cfg.ShowCoordinates = false

	fx := &promptFixture{mgr: session.NewManager(cfg)}
	in := bufio.NewScanner(strings.NewReader(input))
	fx.p = newPrompt(cfg, fx.mgr, fx.mgr.NewGame(), in, output.NewTextWriter(&fx.frames, cfg))
	fx.p.ask = &fx.asked
	return fx
}

func (fx *promptFixture) run(t *testing.T) {
	t.Helper()
	testutil.AssertNoError(t, fx.p.run())
}

func (fx *promptFixture) game(t *testing.T) (turn int, phase engine.Phase, state engine.State) {
	t.Helper()
	_ = fx.p.sess.Do(func(g *engine.Game) error {
		turn, phase, state = g.Turn(), g.Phase(), g.State()
		return nil
	})
	return turn, phase, state
}

func TestPrompt_FoolsMate(t *testing.T) {
	fx := newPromptFixture(t, "f2\nf4\ne7\ne5\ng2\ng4\nd8\nh4\nnever read\n")
	fx.run(t)

	_, phase, state := fx.game(t)
	testutil.AssertEqual(t, phase, engine.GameWon)
	testutil.AssertEqual(t, state, engine.Checkmate)
	testutil.AssertContains(t, fx.frames.String(), "Player 2 is victorious! Congratulations!")
	testutil.AssertContains(t, fx.asked.String(), "(Player 2, top) Select a highlighted tile (or 'cancel') > ")
}

func TestPrompt_Commands(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTurn  int
		wantPhase engine.Phase
	}{
		{"quit keeps selection", "e2\nq\ne4\n", 1, engine.MovePiece},
		{"exit", "exit\n", 1, engine.SelectPiece},
		{"cancel", "e2\nc\n", 1, engine.SelectPiece},
		{"cancel long form", "e2\nCANCEL\n", 1, engine.SelectPiece},
		{"move then end of input", "e2\ne4\n", 2, engine.SelectPiece},
		{"invalid destination keeps selection", "e2\ne5\n", 1, engine.MovePiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newPromptFixture(t, tt.input)
			fx.run(t)

			turn, phase, _ := fx.game(t)
			testutil.AssertEqual(t, turn, tt.wantTurn)
			testutil.AssertEqual(t, phase, tt.wantPhase)
		})
	}
}

func TestPrompt_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not a square", "hello\n", "Invalid selection!"},
		{"off the board", "i9\n", "Invalid selection!"},
		{"empty square", "e4\n", "Invalid selection!"},
		{"opponent piece", "e7\n", "Invalid selection!"},
		{"blocked piece", "a1\n", "No moves available for that piece"},
		{"bad destination", "e2\nzz\n", "Invalid move! Try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newPromptFixture(t, tt.input)
			fx.run(t)
			testutil.AssertContains(t, fx.frames.String(), tt.want)
		})
	}
}

func TestPrompt_New(t *testing.T) {
	fx := newPromptFixture(t, "e2\ne4\nnew\n")
	first := fx.p.sess.ID
	fx.run(t)

	testutil.AssertEqual(t, fx.mgr.Len(), 1)
	testutil.AssertTrue(t, fx.p.sess.ID != first, "new game should get a new id")
	_, err := fx.mgr.Get(first)
	testutil.AssertTrue(t, err != nil, "old game should be removed")

	turn, _, _ := fx.game(t)
	testutil.AssertEqual(t, turn, 1)
}

func TestPrompt_JSONHasNoQuestions(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	cfg.JSONFormat = true

	mgr := session.NewManager(cfg)
	var out bytes.Buffer
	p := newPrompt(cfg, mgr, mgr.NewGame(), bufio.NewScanner(strings.NewReader("e2\n")), output.NewWriter(&out, cfg))

	testutil.AssertTrue(t, p.ask == nil)
	testutil.AssertNoError(t, p.run())
	testutil.AssertContains(t, out.String(), `"selected": "e2"`)
}
