package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func newTestConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	return cfg
}

func selectedFrame(t *testing.T, cfg *config.Config, square string) Frame {
	t.Helper()
	g := engine.NewGame(cfg)
	if _, err := g.SelectPieceAt(square); err != nil {
		t.Fatalf("SelectPieceAt(%s) error: %v", square, err)
	}
	return FrameOf(g)
}

func TestFrameOf(t *testing.T) {
	f := selectedFrame(t, newTestConfig(), "g1")

	testutil.AssertEqual(t, f.Turn, 1)
	testutil.AssertEqual(t, f.Player, "Player 1")
	testutil.AssertEqual(t, f.Side, chess.Bottom)
	testutil.AssertEqual(t, f.Phase, engine.MovePiece)
	testutil.AssertEqual(t, *f.Selected, chess.MustParseCoord("g1"))
	testutil.AssertEqual(t, f.Moves, testutil.MoveSet("f3", "h3"))
	testutil.AssertEqual(t, f.Messages, []string{"Knight g1"})
}

func TestFrame_Prompt(t *testing.T) {
	tests := []struct {
		name  string
		phase engine.Phase
		want  string
	}{
		{"select", engine.SelectPiece, "(Player 1, bottom) Select a piece (e.g. a1) > "},
		{"move", engine.MovePiece, "(Player 1, bottom) Select a highlighted tile (or 'cancel') > "},
		{"won", engine.GameWon, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{Player: "Player 1", Side: chess.Bottom, Phase: tt.phase}
			testutil.AssertEqual(t, f.Prompt(), tt.want)
		})
	}
}

func TestRenderBoard(t *testing.T) {
	cfg := newTestConfig()
	cfg.ShowCoordinates = false
	f := selectedFrame(t, cfg, "e2")

	var buf bytes.Buffer
	RenderBoard(&buf, f, cfg)

	want := strings.Join([]string{
		" r  n  b  q  k  b  n  r ",
		" p  p  p  p  p  p  p  p ",
		" .  .  .  .  .  .  .  . ",
		" .  .  .  .  .  .  .  . ",
		" .  .  .  .  *  .  .  . ",
		" .  .  .  .  *  .  .  . ",
		" P  P  P  P [P] P  P  P ",
		" R  N  B  Q  K  B  N  R ",
	}, "\n") + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_Coordinates(t *testing.T) {
	cfg := newTestConfig()
	g := engine.NewGame(cfg)

	var buf bytes.Buffer
	RenderBoard(&buf, FrameOf(g), cfg)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	testutil.AssertEqual(t, len(lines), 10)
	testutil.AssertEqual(t, lines[0], "    a  b  c  d  e  f  g  h")
	testutil.AssertEqual(t, lines[1], " 8  r  n  b  q  k  b  n  r  8")
	testutil.AssertEqual(t, lines[8], " 1  R  N  B  Q  K  B  N  R  1")
}

func TestRenderBoard_CaptureHighlight(t *testing.T) {
	cfg := newTestConfig()
	cfg.ShowCoordinates = false
	g := engine.NewGame(cfg)
	testutil.MustPlay[engine.MoveResult](t, g, "e2e4", "d7d5")
	if _, err := g.SelectPieceAt("e4"); err != nil {
		t.Fatalf("SelectPieceAt(e4) error: %v", err)
	}

	var buf bytes.Buffer
	RenderBoard(&buf, FrameOf(g), cfg)
	lines := strings.Split(buf.String(), "\n")

	testutil.AssertEqual(t, lines[3], " .  .  . *p* *  .  .  . ")
	testutil.AssertEqual(t, lines[4], " .  .  .  . [P] .  .  . ")
}

func TestRenderBoard_Colour(t *testing.T) {
	cfg := newTestConfig()
	cfg.UseColour = true
	f := selectedFrame(t, cfg, "e2")

	var buf bytes.Buffer
	RenderBoard(&buf, f, cfg)
	testutil.AssertContains(t, buf.String(), ansiHighlight+" * "+ansiReset)

	buf.Reset()
	RenderMessages(&buf, []string{"Pawn e2"}, cfg)
	testutil.AssertEqual(t, buf.String(), ansiBlue+"Pawn e2"+ansiReset+"\n")
}

func TestOutputFrameJSON(t *testing.T) {
	f := selectedFrame(t, newTestConfig(), "e2")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputFrameJSON(&buf, f))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, got["state"], "in_progress")
	testutil.AssertEqual(t, got["side"], "bottom")
	testutil.AssertEqual(t, got["selected"], "e2")
	testutil.AssertEqual(t, got["placement"], chess.InitialPlacement)
	testutil.AssertEqual(t, got["moves"], map[string]interface{}{"e3": "move", "e4": "move"})

	board := got["board"].([]interface{})
	firstRank := board[0].([]interface{})
	testutil.AssertEqual(t, firstRank[4], map[string]interface{}{"owner": "bottom", "kind": "king"})
}

func TestJSONWriter_Batch(t *testing.T) {
	cfg := newTestConfig()
	g := engine.NewGame(cfg)

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteFrame(FrameOf(g)))
	testutil.MustPlay[engine.MoveResult](t, g, "e2e4")
	testutil.AssertNoError(t, w.WriteFrame(FrameOf(g)))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(out.Frames), 2)
	testutil.AssertEqual(t, out.Frames[1].Placement, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
	testutil.AssertEqual(t, out.Frames[1].Player, "Player 2")
	testutil.AssertEqual(t, out.Frames[1].Side, chess.Top)
	testutil.AssertEqual(t, out.Frames[1].State, engine.InProgress)
	testutil.AssertEqual(t, out.Frames[1].Board[3][4], chess.SquareInfo{Owner: chess.Bottom, Kind: chess.Pawn})
}

func TestJSONWriter_DecodesSelection(t *testing.T) {
	f := selectedFrame(t, newTestConfig(), "g1")

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteFrame(f))
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(out.Frames), 1)
	testutil.AssertEqual(t, out.Frames[0].Selected, &chess.Coord{File: 7, Rank: 1})
	testutil.AssertEqual(t, out.Frames[0].Moves, map[string]chess.MoveClass{"f3": chess.MoveTo, "h3": chess.MoveTo})
}

func TestNewWriter(t *testing.T) {
	cfg := newTestConfig()
	if _, ok := NewWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("NewWriter() without JSONFormat is not a TextWriter")
	}
	cfg.JSONFormat = true
	if _, ok := NewWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("NewWriter() with JSONFormat is not a JSONWriter")
	}
}
