// prompt.go - Interactive input loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// prompt reads one request per line and hands it to the current game.
type prompt struct {
	cfg    *config.Config
	mgr    *session.Manager
	sess   *session.Session
	in     *bufio.Scanner
	frames output.FrameWriter
	ask    io.Writer // where questions go; nil in JSON mode
}

func newPrompt(cfg *config.Config, mgr *session.Manager, sess *session.Session, in *bufio.Scanner, frames output.FrameWriter) *prompt {
	p := &prompt{cfg: cfg, mgr: mgr, sess: sess, in: in, frames: frames}
	if !cfg.JSONFormat {
		p.ask = os.Stdout
	}
	return p
}

// run shows the board and handles input until the game is won, the player
// quits or input ends.
func (p *prompt) run() error {
	f, err := p.show()
	if err != nil {
		return err
	}
	for f.Phase != engine.GameWon {
		if p.ask != nil {
			fmt.Fprint(p.ask, f.Prompt())
		}
		if !p.in.Scan() {
			return p.in.Err()
		}
		if !p.handle(p.in.Text()) {
			return nil
		}
		if f, err = p.show(); err != nil {
			return err
		}
	}
	return nil
}

// handle processes one line of input. It returns false when the player
// asked to quit.
func (p *prompt) handle(line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "exit", "x", "q":
		return false
	case "cancel", "c":
		p.sess.Cancel()
	case "new":
		p.restart()
	default:
		p.request(cmd)
	}
	return true
}

// request treats input as a square: a selection or a destination depending
// on the phase. The engine rejects anything that is not a square and
// queues the message to show.
func (p *prompt) request(square string) {
	var phase engine.Phase
	_ = p.sess.Do(func(g *engine.Game) error {
		phase = g.Phase()
		return nil
	})

	var err error
	if phase == engine.MovePiece {
		_, err = p.sess.MovePieceTo(square)
	} else {
		_, err = p.sess.SelectPieceAt(square)
	}
	if err != nil && p.cfg.Logging(config.Commentary) {
		fmt.Fprintf(p.cfg.LogFile, "rejected %q: %v\n", square, err)
	}
}

// restart replaces the current game with a fresh one.
func (p *prompt) restart() {
	_ = p.mgr.Remove(p.sess.ID)
	p.sess = p.mgr.NewGame()
	if p.cfg.Logging(config.Results) {
		fmt.Fprintf(p.cfg.LogFile, "new game %s\n", p.sess.ID)
	}
}

// show writes the current frame.
func (p *prompt) show() (output.Frame, error) {
	var f output.Frame
	_ = p.sess.Do(func(g *engine.Game) error {
		f = output.FrameOf(g)
		return nil
	})
	return f, p.frames.WriteFrame(f)
}
