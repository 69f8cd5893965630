// Package replay plays scripted games through the rule engine in parallel.
//
// A script file holds one game per line. A line is an optional "name:"
// prefix followed by whitespace-separated from-to moves such as "e2e4" or
// "e2-e4". Blank lines and lines starting with '#' are ignored.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Script is one scripted game.
type Script struct {
	Index int
	Line  int
	Name  string
	Moves []Move
}

// Move is a from-to pair.
type Move struct {
	From string
	To   string
}

// String returns the move in from-to form, e.g. "e2e4".
func (m Move) String() string {
	return m.From + m.To
}

// Result is the outcome of replaying a script.
type Result struct {
	Script    Script
	Played    int // moves accepted before the script ended or failed
	State     engine.State
	Winner    string
	Placement string
	Board     chess.Snapshot
	ToMove    chess.Side
	Err       error

	// DuplicateOf names the earlier game that ended in the same position.
	// Set only when duplicate reporting is enabled.
	DuplicateOf string
}

// ParseScripts reads scripts from r, one per non-comment line.
func ParseScripts(r io.Reader) ([]Script, error) {
	var scripts []Script
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		s.Index = len(scripts)
		s.Line = lineNo
		if s.Name == "" {
			s.Name = fmt.Sprintf("game %d", s.Index+1)
		}
		scripts = append(scripts, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return scripts, nil
}

func parseLine(line string) (Script, error) {
	var s Script
	if name, rest, found := strings.Cut(line, ":"); found {
		s.Name = strings.TrimSpace(name)
		line = rest
	}

	for _, tok := range strings.Fields(line) {
		m, err := ParseMove(tok)
		if err != nil {
			return Script{}, err
		}
		s.Moves = append(s.Moves, m)
	}
	if len(s.Moves) == 0 {
		return Script{}, errors.Wrap(errors.ErrInvalidScript, "no moves")
	}
	return s, nil
}

// ParseMove parses "e2e4" or "e2-e4".
func ParseMove(tok string) (Move, error) {
	s := strings.Replace(tok, "-", "", 1)
	if len(s) != 4 {
		return Move{}, errors.Wrapf(errors.ErrInvalidScript, "%q is not a from-to pair", tok)
	}
	m := Move{From: strings.ToLower(s[:2]), To: strings.ToLower(s[2:])}
	for _, sq := range []string{m.From, m.To} {
		if _, err := chess.ParseCoord(sq); err != nil {
			return Move{}, errors.Wrapf(errors.ErrInvalidScript, "%q: %v", tok, err)
		}
	}
	return m, nil
}

// Run plays s on a fresh game. Playing stops at the first rejected request.
func Run(s Script, cfg *config.Config) Result {
	g := engine.NewGame(cfg)
	res := Result{Script: s}

	for i, m := range s.Moves {
		if _, err := g.SelectPieceAt(m.From); err != nil {
			res.Err = errors.Wrapf(err, "move %d (%s)", i+1, m)
			break
		}
		if _, err := g.MovePieceTo(m.To); err != nil {
			res.Err = errors.Wrapf(err, "move %d (%s)", i+1, m)
			break
		}
		res.Played++
	}

	res.State = g.State()
	if w := g.Winner(); w != nil {
		res.Winner = w.Name
	}
	res.Board = g.BoardState()
	res.Placement = res.Board.Placement()
	res.ToMove = g.CurrentPlayer().Side
	return res
}

// RunAll replays scripts on workers goroutines and returns the results in
// script order. Games are played silently; with running commentary enabled
// the summary of each is logged once all have finished.
func RunAll(scripts []Script, cfg *config.Config, workers int) []Result {
	gameCfg := *cfg
	gameCfg.Verbosity = config.Silent

	results := worker.Map(scripts, workers, func(job worker.Job[Script]) Result {
		return Run(job.Input, &gameCfg)
	})

	if cfg.Duplicate.Report {
		markDuplicates(results, cfg.Duplicate.ExactMatch)
	}

	if cfg.Logging(config.Commentary) {
		for _, r := range results {
			fmt.Fprintln(cfg.LogFile, r.Summary())
		}
	}
	return results
}

// markDuplicates runs in script order so the first game reaching a
// position is the original.
func markDuplicates(results []Result, exact bool) {
	d := hashing.NewDuplicateDetector(exact)
	for i := range results {
		r := &results[i]
		sig := hashing.NewSignature(i, r.Board, r.ToMove, r.Played)
		if first, dup := d.CheckAndAdd(sig); dup {
			r.DuplicateOf = results[first.Index].Script.Name
		}
	}
}

// Summary describes the result in one line, e.g.
// "game 1: 4 moves, checkmate, Player 2 wins".
func (r Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d moves, %s", r.Script.Name, r.Played, r.State)
	if r.Winner != "" {
		fmt.Fprintf(&sb, ", %s wins", r.Winner)
	}
	if r.DuplicateOf != "" {
		fmt.Fprintf(&sb, ", same position as %s", r.DuplicateOf)
	}
	if r.Err != nil {
		fmt.Fprintf(&sb, " (stopped: %v)", r.Err)
	}
	return sb.String()
}

type jsonResult struct {
	Name      string       `json:"name"`
	Line      int          `json:"line"`
	Played    int          `json:"played"`
	State     engine.State `json:"state"`
	Winner    string       `json:"winner,omitempty"`
	Placement string       `json:"placement"`
	Duplicate string       `json:"duplicate_of,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// WriteResults writes one summary line per result, or a JSON array when
// asJSON is set.
func WriteResults(w io.Writer, results []Result, asJSON bool) error {
	if !asJSON {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Summary()); err != nil {
				return err
			}
		}
		return nil
	}

	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Name:      r.Script.Name,
			Line:      r.Script.Line,
			Played:    r.Played,
			State:     r.State,
			Winner:    r.Winner,
			Placement: r.Placement,
			Duplicate: r.DuplicateOf,
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
