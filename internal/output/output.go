// Package output renders game frames for the interactive prompt: a text
// board with highlighted destinations, or JSON for scripted clients.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// ANSI escapes used when colour output is enabled.
const (
	ansiReset     = "\x1b[0m"
	ansiBlue      = "\x1b[34m"
	ansiHighlight = "\x1b[43m"
	ansiWin       = "\x1b[42m"
)

// Frame is everything the display shows after a request.
type Frame struct {
	Turn     int
	Player   string
	Side     chess.Side
	State    engine.State
	Phase    engine.Phase
	Winner   string
	Board    chess.Snapshot
	Selected *chess.Coord
	Moves    chess.MoveMap
	Messages []string
}

// FrameOf captures g, draining its queued messages.
func FrameOf(g *engine.Game) Frame {
	f := Frame{
		Turn:     g.Turn(),
		Player:   g.CurrentPlayer().Name,
		Side:     g.CurrentPlayer().Side,
		State:    g.State(),
		Phase:    g.Phase(),
		Board:    g.BoardState(),
		Moves:    g.LegalMoves(),
		Messages: g.Messages(),
	}
	if c, ok := g.Selected(); ok {
		f.Selected = &c
	}
	if w := g.Winner(); w != nil {
		f.Winner = w.Name
	}
	return f
}

// Prompt returns the question for the player to move, e.g.
// "(Player 1, bottom) Select a piece (e.g. a1) > ".
func (f Frame) Prompt() string {
	who := fmt.Sprintf("(%s, %s)", f.Player, f.Side)
	switch f.Phase {
	case engine.MovePiece:
		return who + " Select a highlighted tile (or 'cancel') > "
	case engine.GameWon:
		return ""
	}
	return who + " Select a piece (e.g. a1) > "
}

// RenderBoard writes the board with rank 8 at the top. The selected piece
// is bracketed and destinations are starred; with colour enabled they are
// also highlighted.
func RenderBoard(w io.Writer, f Frame, cfg *config.Config) {
	var sb strings.Builder
	files := "    a  b  c  d  e  f  g  h\n"
	if cfg.ShowCoordinates {
		sb.WriteString(files)
	}
	for rank := chess.BoardSize; rank >= 1; rank-- {
		if cfg.ShowCoordinates {
			fmt.Fprintf(&sb, " %d ", rank)
		}
		for file := 1; file <= chess.BoardSize; file++ {
			c := chess.Coord{File: file, Rank: rank}
			sb.WriteString(renderSquare(f, c, cfg.UseColour))
		}
		if cfg.ShowCoordinates {
			fmt.Fprintf(&sb, " %d", rank)
		}
		sb.WriteByte('\n')
	}
	if cfg.ShowCoordinates {
		sb.WriteString(files)
	}
	io.WriteString(w, sb.String()) //nolint:errcheck // display output
}

func renderSquare(f Frame, c chess.Coord, colour bool) string {
	info := f.Board.At(c)
	glyph := "."
	if info.Kind != chess.Empty {
		glyph = string(pieceLetter(info))
	}

	cell := " " + glyph + " "
	_, isMove := f.Moves[c]
	switch {
	case f.Selected != nil && *f.Selected == c:
		cell = "[" + glyph + "]"
	case isMove && info.Kind == chess.Empty:
		cell = " * "
	case isMove:
		cell = "*" + glyph + "*"
	}

	if !colour {
		return cell
	}
	switch {
	case f.State == engine.Checkmate:
		return ansiWin + cell + ansiReset
	case isMove:
		return ansiHighlight + cell + ansiReset
	}
	return cell
}

// pieceLetter returns the FEN letter of a piece: upper case for the
// bottom side.
func pieceLetter(info chess.SquareInfo) byte {
	letter := info.Kind.Letter()
	if info.Owner == chess.Top {
		letter += 'a' - 'A'
	}
	return letter
}

// RenderMessages writes each queued message on its own line.
func RenderMessages(w io.Writer, msgs []string, cfg *config.Config) {
	for _, m := range msgs {
		if cfg.UseColour {
			m = ansiBlue + m + ansiReset
		}
		fmt.Fprintln(w, m)
	}
}
